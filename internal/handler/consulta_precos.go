package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"loja/internal/apierror"
	"loja/internal/dto"
	"loja/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const precoCacheTTL = 4 * time.Hour

// ConsultaPrecosHandler serves the public price check endpoint.
// No authentication required — read only, Redis-cached.
type ConsultaPrecosHandler struct {
	repo repository.ProdutoRepository
	rdb  *redis.Client
}

func NewConsultaPrecosHandler(repo repository.ProdutoRepository, rdb *redis.Client) *ConsultaPrecosHandler {
	return &ConsultaPrecosHandler{repo: repo, rdb: rdb}
}

// GetPreco godoc
// @Summary Consulta de preço de um produto (sem autenticação)
// @Tags preco
// @Produce json
// @Param id path string true "UUID do produto"
// @Success 200 {object} dto.ConsultaPrecoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/preco/{id} [get]
func (h *ConsultaPrecosHandler) GetPreco(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "preco:" + id.String()

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ConsultaPrecoResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	produto, err := h.repo.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
		return
	}

	resp := dto.ConsultaPrecoResponse{
		Nome:  produto.Nome,
		Preco: produto.Preco,
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, precoCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
