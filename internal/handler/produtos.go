package handler

import (
	"net/http"

	"loja/internal/apierror"
	"loja/internal/dto"
	"loja/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarProdutoRequest true "Dados do produto"
// @Success      201 {object} dto.ProdutoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/produtos [post]
func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if isNotFound(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProdutoResponse
// @Router       /v1/produtos [get]
func (h *ProdutosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar produtos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID godoc
// @Summary      Obter produto por id
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      200 {object} dto.ProdutoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/produtos/{id} [get]
func (h *ProdutosHandler) ObterPorID(c *gin.Context) {
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
// @Summary      Atualizar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                      true "UUID do produto"
// @Param        body body dto.AtualizarProdutoRequest true "Campos a atualizar"
// @Success      200 {object} dto.ProdutoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/produtos/{id} [put]
func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarProdutoRequest
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
// @Summary      Excluir produto
// @Tags         produtos
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/produtos/{id} [delete]
func (h *ProdutosHandler) Remover(c *gin.Context) {
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
