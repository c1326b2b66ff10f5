package handler

import (
	"net/http"

	"loja/internal/apierror"
	"loja/internal/dto"
	"loja/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarUsuarioRequest true "Dados do usuário"
// @Success      201 {object} dto.UsuarioResponse
// @Router       /v1/usuarios [post]
func (h *UsuariosHandler) Criar(c *gin.Context) {
	var req dto.CriarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarUsuario(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao cadastrar usuário"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar usuários
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.UsuarioResponse
// @Router       /v1/usuarios [get]
func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar usuários"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                      true "UUID do usuário"
// @Param        body body dto.AtualizarUsuarioRequest true "Campos a atualizar"
// @Success      200 {object} dto.UsuarioResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/usuarios/{id} [put]
func (h *UsuariosHandler) Atualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarUsuario(c.Request.Context(), id, req)
	if err != nil {
		status := http.StatusInternalServerError
		if isNotFound(err) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Remover godoc
// @Summary      Excluir usuário
// @Tags         usuarios
// @Security     BearerAuth
// @Param        id path string true "UUID do usuário"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/usuarios/{id} [delete]
func (h *UsuariosHandler) Remover(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.RemoverUsuario(c.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if isNotFound(err) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
