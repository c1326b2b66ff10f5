package handler

import (
	"net/http"

	"loja/internal/apierror"
	"loja/internal/dto"
	"loja/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarClienteRequest true "Dados do cliente"
// @Success      201 {object} dto.ClienteResponse
// @Router       /v1/clientes [post]
func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao cadastrar cliente"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClienteResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID godoc
// @Summary      Obter cliente por id
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do cliente"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [get]
func (h *ClientesHandler) ObterPorID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                      true "UUID do cliente"
// @Param        body body dto.AtualizarClienteRequest true "Campos a atualizar"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [put]
func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
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
// @Summary      Excluir cliente
// @Tags         clientes
// @Security     BearerAuth
// @Param        id path string true "UUID do cliente"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [delete]
func (h *ClientesHandler) Remover(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		status := http.StatusInternalServerError
		if isNotFound(err) {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
