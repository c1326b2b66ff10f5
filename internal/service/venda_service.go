package service

import (
	"context"
	"sort"
	"time"

	"loja/internal/dto"
	"loja/internal/model"
	"loja/internal/repository"
	"loja/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VendaService is the sales ledger and reporting engine.
//
// GravarVenda checks that the referenced cliente and produto exist before
// anything is written; the insert itself runs inside a transaction so the row
// is either fully committed or not at all.
//
// The Consultar* methods are stateless reads. The summarized variants accept
// a nil filter, in which case they aggregate across ALL vendas and return one
// row per distinct group — the filtered form is the single-group
// specialization of the same computation.
type VendaService interface {
	GravarVenda(ctx context.Context, req dto.GravarVendaRequest) (*dto.VendaResponse, error)
	ConsultarDetalhadaPorProduto(ctx context.Context, produtoID uuid.UUID) ([]dto.VendaDetalhadaResponse, error)
	ConsultarDetalhadaPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.VendaDetalhadaResponse, error)
	ConsultarSumarizadaPorProduto(ctx context.Context, produtoID *uuid.UUID) ([]dto.VendaSumarizadaProdutoResponse, error)
	ConsultarSumarizadaPorCliente(ctx context.Context, clienteID *uuid.UUID) ([]dto.VendaSumarizadaClienteResponse, error)
}

type vendaService struct {
	repo        repository.VendaRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
	dispatcher  *worker.Dispatcher
}

func NewVendaService(
	repo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	dispatcher *worker.Dispatcher,
) VendaService {
	return &vendaService{
		repo:        repo,
		clienteRepo: clienteRepo,
		produtoRepo: produtoRepo,
		dispatcher:  dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── GravarVenda ──────────────────────────────────────────────────────────────

func (s *vendaService) GravarVenda(ctx context.Context, req dto.GravarVendaRequest) (*dto.VendaResponse, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}

	// The original service accepted any quantity/price; both are rejected here
	// because a venda with quantidade <= 0 or preco <= 0 can never be correct.
	if req.Quantidade < 1 {
		return nil, ErrQuantidadeInvalida
	}
	if !req.PrecoUnitario.IsPositive() {
		return nil, ErrPrecoInvalido
	}

	dataVenda := time.Now().UTC()
	if req.DataVenda != "" {
		dataVenda, err = time.Parse(time.RFC3339, req.DataVenda)
		if err != nil {
			return nil, ErrDataInvalida
		}
	}

	// Reference checks, fail fast — the insert is never attempted when either
	// lookup misses, so no partial row can be left behind.
	if _, err := s.clienteRepo.FindByID(ctx, clienteID); err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	if _, err := s.produtoRepo.FindByID(ctx, produtoID); err != nil {
		return nil, ErrProdutoNaoEncontrado
	}

	venda := model.Venda{
		DataVenda:         dataVenda,
		NumeroNotaFiscal:  req.NumeroNotaFiscal,
		ClienteID:         clienteID,
		ProdutoID:         produtoID,
		QuantidadeVendida: req.Quantidade,
		PrecoUnitario:     req.PrecoUnitario,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &venda)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async PDF receipt — best effort, fire & forget
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJobPayload{VendaID: venda.ID.String()})
	}

	return &dto.VendaResponse{
		ID:               venda.ID.String(),
		DataVenda:        venda.DataVenda.Format(time.RFC3339),
		NumeroNotaFiscal: venda.NumeroNotaFiscal,
		ClienteID:        venda.ClienteID.String(),
		ProdutoID:        venda.ProdutoID.String(),
		Quantidade:       venda.QuantidadeVendida,
		PrecoUnitario:    venda.PrecoUnitario,
	}, nil
}

// ── Detailed queries ─────────────────────────────────────────────────────────
// One line per venda, cliente/produto names joined in. Repository ordering
// (data_venda ASC, id ASC) makes results deterministic.

func (s *vendaService) ConsultarDetalhadaPorProduto(ctx context.Context, produtoID uuid.UUID) ([]dto.VendaDetalhadaResponse, error) {
	vendas, err := s.repo.ListByProduto(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	return vendasToDetalhadas(vendas), nil
}

func (s *vendaService) ConsultarDetalhadaPorCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.VendaDetalhadaResponse, error) {
	vendas, err := s.repo.ListByCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	return vendasToDetalhadas(vendas), nil
}

func vendasToDetalhadas(vendas []model.Venda) []dto.VendaDetalhadaResponse {
	out := make([]dto.VendaDetalhadaResponse, 0, len(vendas))
	for _, v := range vendas {
		produtoNome, clienteNome := "", ""
		if v.Produto != nil {
			produtoNome = v.Produto.Nome
		}
		if v.Cliente != nil {
			clienteNome = v.Cliente.Nome
		}
		out = append(out, dto.VendaDetalhadaResponse{
			VendaID:       v.ID.String(),
			DataVenda:     v.DataVenda.Format(time.RFC3339),
			ProdutoNome:   produtoNome,
			ClienteNome:   clienteNome,
			Quantidade:    v.QuantidadeVendida,
			PrecoUnitario: v.PrecoUnitario,
		})
	}
	return out
}

// ── Summarized queries ───────────────────────────────────────────────────────
// Revenue per row is quantidade × preco_unitario (the snapshot price stored on
// the venda), summed with decimal arithmetic — never the current catalog
// price, never floats.

func (s *vendaService) ConsultarSumarizadaPorProduto(ctx context.Context, produtoID *uuid.UUID) ([]dto.VendaSumarizadaProdutoResponse, error) {
	vendas, err := s.listForSummary(ctx, produtoID, nil)
	if err != nil {
		return nil, err
	}

	type grupo struct {
		nome       string
		quantidade int
		total      decimal.Decimal
	}
	grupos := make(map[uuid.UUID]*grupo)
	for _, v := range vendas {
		g, ok := grupos[v.ProdutoID]
		if !ok {
			g = &grupo{total: decimal.Zero}
			if v.Produto != nil {
				g.nome = v.Produto.Nome
			}
			grupos[v.ProdutoID] = g
		}
		g.quantidade += v.QuantidadeVendida
		g.total = g.total.Add(v.PrecoUnitario.Mul(decimal.NewFromInt(int64(v.QuantidadeVendida))))
	}

	out := make([]dto.VendaSumarizadaProdutoResponse, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, dto.VendaSumarizadaProdutoResponse{
			ProdutoNome:     g.nome,
			TotalQuantidade: g.quantidade,
			TotalVendido:    g.total,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProdutoNome < out[j].ProdutoNome })
	return out, nil
}

func (s *vendaService) ConsultarSumarizadaPorCliente(ctx context.Context, clienteID *uuid.UUID) ([]dto.VendaSumarizadaClienteResponse, error) {
	vendas, err := s.listForSummary(ctx, nil, clienteID)
	if err != nil {
		return nil, err
	}

	type grupo struct {
		nome     string
		total    decimal.Decimal
		produtos []dto.ProdutoVendidoResponse
	}
	grupos := make(map[uuid.UUID]*grupo)
	for _, v := range vendas {
		g, ok := grupos[v.ClienteID]
		if !ok {
			g = &grupo{total: decimal.Zero}
			if v.Cliente != nil {
				g.nome = v.Cliente.Nome
			}
			grupos[v.ClienteID] = g
		}
		produtoNome := ""
		if v.Produto != nil {
			produtoNome = v.Produto.Nome
		}
		g.total = g.total.Add(v.PrecoUnitario.Mul(decimal.NewFromInt(int64(v.QuantidadeVendida))))
		// One breakdown entry per venda row, like the original report.
		g.produtos = append(g.produtos, dto.ProdutoVendidoResponse{
			ProdutoNome: produtoNome,
			Quantidade:  v.QuantidadeVendida,
		})
	}

	out := make([]dto.VendaSumarizadaClienteResponse, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, dto.VendaSumarizadaClienteResponse{
			ClienteNome:      g.nome,
			TotalVendido:     g.total,
			ProdutosVendidos: g.produtos,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClienteNome < out[j].ClienteNome })
	return out, nil
}

// listForSummary resolves which slice of the ledger a summary runs over:
// a single produto, a single cliente, or everything.
func (s *vendaService) listForSummary(ctx context.Context, produtoID, clienteID *uuid.UUID) ([]model.Venda, error) {
	switch {
	case produtoID != nil:
		return s.repo.ListByProduto(ctx, *produtoID)
	case clienteID != nil:
		return s.repo.ListByCliente(ctx, *clienteID)
	default:
		return s.repo.ListAll(ctx)
	}
}
