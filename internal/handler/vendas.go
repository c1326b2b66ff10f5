package handler

import (
	"errors"
	"net/http"

	"loja/internal/apierror"
	"loja/internal/dto"
	"loja/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler { return &VendasHandler{svc: svc} }

// GravarVenda godoc
// @Summary      Gravar uma nova venda
// @Description  Valida as referências de cliente e produto e grava a venda atomicamente.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.GravarVendaRequest true "Dados da venda"
// @Success      201  {object} dto.VendaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/vendas [post]
func (h *VendasHandler) GravarVenda(c *gin.Context) {
	var req dto.GravarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.GravarVenda(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClienteNaoEncontrado),
			errors.Is(err, service.ErrProdutoNaoEncontrado),
			errors.Is(err, service.ErrQuantidadeInvalida),
			errors.Is(err, service.ErrPrecoInvalido),
			errors.Is(err, service.ErrDataInvalida):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gravar venda"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DetalhadaPorProduto godoc
// @Summary      Vendas detalhadas por produto
// @Description  Uma linha por venda do produto, ordenada por data e id.
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      200 {array} dto.VendaDetalhadaResponse
// @Router       /v1/vendas/produto/{id}/detalhada [get]
func (h *VendasHandler) DetalhadaPorProduto(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ConsultarDetalhadaPorProduto(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DetalhadaPorCliente godoc
// @Summary      Vendas detalhadas por cliente
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do cliente"
// @Success      200 {array} dto.VendaDetalhadaResponse
// @Router       /v1/vendas/cliente/{id}/detalhada [get]
func (h *VendasHandler) DetalhadaPorCliente(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ConsultarDetalhadaPorCliente(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SumarizadaPorProduto godoc
// @Summary      Vendas sumarizadas de um produto
// @Description  Total de quantidade e receita (quantidade × preço da venda) do produto.
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      200 {array} dto.VendaSumarizadaProdutoResponse
// @Router       /v1/vendas/produto/{id}/sumarizada [get]
func (h *VendasHandler) SumarizadaPorProduto(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ConsultarSumarizadaPorProduto(c.Request.Context(), &id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SumarizadaPorCliente godoc
// @Summary      Vendas sumarizadas de um cliente
// @Description  Receita total do cliente com detalhamento por produto.
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do cliente"
// @Success      200 {array} dto.VendaSumarizadaClienteResponse
// @Router       /v1/vendas/cliente/{id}/sumarizada [get]
func (h *VendasHandler) SumarizadaPorCliente(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ConsultarSumarizadaPorCliente(c.Request.Context(), &id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RelatorioProdutos godoc
// @Summary      Relatório de vendas por produto
// @Description  Uma linha de totais por produto, sobre todas as vendas.
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.VendaSumarizadaProdutoResponse
// @Router       /v1/vendas/relatorios/produtos [get]
func (h *VendasHandler) RelatorioProdutos(c *gin.Context) {
	resp, err := h.svc.ConsultarSumarizadaPorProduto(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RelatorioClientes godoc
// @Summary      Relatório de vendas por cliente
// @Description  Uma linha de totais por cliente, sobre todas as vendas.
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.VendaSumarizadaClienteResponse
// @Router       /v1/vendas/relatorios/clientes [get]
func (h *VendasHandler) RelatorioClientes(c *gin.Context) {
	resp, err := h.svc.ConsultarSumarizadaPorCliente(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
