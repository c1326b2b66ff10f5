package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loja/internal/dto"
	"loja/internal/handler"
	"loja/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVendaService returns canned responses; err (when set) wins.
type stubVendaService struct {
	gravada     *dto.VendaResponse
	detalhadas  []dto.VendaDetalhadaResponse
	porProduto  []dto.VendaSumarizadaProdutoResponse
	porCliente  []dto.VendaSumarizadaClienteResponse
	err         error
	lastRequest *dto.GravarVendaRequest
	lastFiltro  *uuid.UUID
}

func (s *stubVendaService) GravarVenda(_ context.Context, req dto.GravarVendaRequest) (*dto.VendaResponse, error) {
	s.lastRequest = &req
	if s.err != nil {
		return nil, s.err
	}
	return s.gravada, nil
}

func (s *stubVendaService) ConsultarDetalhadaPorProduto(_ context.Context, _ uuid.UUID) ([]dto.VendaDetalhadaResponse, error) {
	return s.detalhadas, s.err
}

func (s *stubVendaService) ConsultarDetalhadaPorCliente(_ context.Context, _ uuid.UUID) ([]dto.VendaDetalhadaResponse, error) {
	return s.detalhadas, s.err
}

func (s *stubVendaService) ConsultarSumarizadaPorProduto(_ context.Context, id *uuid.UUID) ([]dto.VendaSumarizadaProdutoResponse, error) {
	s.lastFiltro = id
	return s.porProduto, s.err
}

func (s *stubVendaService) ConsultarSumarizadaPorCliente(_ context.Context, id *uuid.UUID) ([]dto.VendaSumarizadaClienteResponse, error) {
	s.lastFiltro = id
	return s.porCliente, s.err
}

var _ service.VendaService = (*stubVendaService)(nil)

func setupVendasRouter(svc service.VendaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewVendasHandler(svc)
	r := gin.New()
	r.POST("/v1/vendas", h.GravarVenda)
	r.GET("/v1/vendas/produto/:id/detalhada", h.DetalhadaPorProduto)
	r.GET("/v1/vendas/produto/:id/sumarizada", h.SumarizadaPorProduto)
	r.GET("/v1/vendas/cliente/:id/sumarizada", h.SumarizadaPorCliente)
	r.GET("/v1/vendas/relatorios/produtos", h.RelatorioProdutos)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGravarVendaHandler_Created(t *testing.T) {
	svc := &stubVendaService{gravada: &dto.VendaResponse{ID: uuid.NewString(), Quantidade: 3}}
	r := setupVendasRouter(svc)

	w := postJSON(r, "/v1/vendas", dto.GravarVendaRequest{
		ClienteID:        uuid.NewString(),
		ProdutoID:        uuid.NewString(),
		Quantidade:       3,
		PrecoUnitario:    decimal.RequireFromString("9.50"),
		NumeroNotaFiscal: "NF-100",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.lastRequest)
	assert.Equal(t, 3, svc.lastRequest.Quantidade)
}

func TestGravarVendaHandler_ValidacaoCampos(t *testing.T) {
	svc := &stubVendaService{}
	r := setupVendasRouter(svc)

	// Missing produto_id and nota fiscal, quantidade below minimum.
	w := postJSON(r, "/v1/vendas", map[string]interface{}{
		"cliente_id":     uuid.NewString(),
		"quantidade":     0,
		"preco_unitario": "9.50",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	// Service is never reached when validation fails.
	assert.Nil(t, svc.lastRequest)

	var body struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Erro de validação", body.Detail)
	assert.Contains(t, body.Fields, "ProdutoID")
}

func TestGravarVendaHandler_ClienteNaoEncontrado(t *testing.T) {
	svc := &stubVendaService{err: service.ErrClienteNaoEncontrado}
	r := setupVendasRouter(svc)

	w := postJSON(r, "/v1/vendas", dto.GravarVendaRequest{
		ClienteID:        uuid.NewString(),
		ProdutoID:        uuid.NewString(),
		Quantidade:       1,
		PrecoUnitario:    decimal.RequireFromString("5.00"),
		NumeroNotaFiscal: "NF-101",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cliente não encontrado")
}

func TestGravarVendaHandler_JSONInvalido(t *testing.T) {
	svc := &stubVendaService{}
	r := setupVendasRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/vendas", bytes.NewReader([]byte("{nope")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetalhadaPorProduto_IDInvalido(t *testing.T) {
	r := setupVendasRouter(&stubVendaService{})

	w := get(r, "/v1/vendas/produto/nao-e-uuid/detalhada")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ID inválido")
}

func TestSumarizadaPorProduto_PassaFiltro(t *testing.T) {
	svc := &stubVendaService{porProduto: []dto.VendaSumarizadaProdutoResponse{}}
	r := setupVendasRouter(svc)
	id := uuid.New()

	w := get(r, "/v1/vendas/produto/"+id.String()+"/sumarizada")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFiltro)
	assert.Equal(t, id, *svc.lastFiltro)
}

func TestRelatorioProdutos_SemFiltro(t *testing.T) {
	svc := &stubVendaService{porProduto: []dto.VendaSumarizadaProdutoResponse{
		{ProdutoNome: "Caderno 96 folhas", TotalQuantidade: 5, TotalVendido: decimal.RequireFromString("48.50")},
	}}
	r := setupVendasRouter(svc)

	w := get(r, "/v1/vendas/relatorios/produtos")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.lastFiltro)

	var rows []dto.VendaSumarizadaProdutoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Caderno 96 folhas", rows[0].ProdutoNome)
}
