package tui

import (
	"errors"

	"github.com/Hipolitoneto/receitas/internal/adapter"
	"github.com/Hipolitoneto/receitas/internal/service"
	"github.com/Hipolitoneto/receitas/internal/validators"
)

// humanizeError translates layer errors into the Portuguese messages shown in
// the error overlay. Unknown errors fall back to their raw text.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, service.ErrNotSignedIn):
		return "Você precisa entrar para fazer isso"
	case errors.Is(err, service.ErrSessionExpired):
		return "Sua sessão expirou, entre novamente"
	case errors.Is(err, service.ErrNotAllowed):
		return "Você não tem permissão para apagar esta receita"
	case errors.Is(err, service.ErrRecipeNotFound):
		return "Receita não encontrada ou privada"
	case errors.Is(err, validators.ErrEmptyTitle):
		return "O título é obrigatório"
	case errors.Is(err, validators.ErrEmptyIngredients):
		return "Os ingredientes são obrigatórios"
	case errors.Is(err, validators.ErrEmptyPreparation):
		return "O modo de preparo é obrigatório"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Email ou senha incorretos"
	case errors.Is(err, adapter.ErrConflict):
		return "Este email já está cadastrado"
	case errors.Is(err, adapter.ErrTransient):
		return "Sem conexão com o servidor, tente novamente"
	default:
		return err.Error()
	}
}
