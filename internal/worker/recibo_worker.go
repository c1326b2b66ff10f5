package worker

// recibo_worker.go
// Processes receipt jobs from QueueRecibo: loads the venda, renders the PDF
// receipt and, when the cliente has an email on file, enqueues an email job
// with the PDF attached. Exhausted retries land in the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"loja/internal/infra"
	"loja/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxReciboAttempts = 3

type ReciboWorker struct {
	vendaRepo   repository.VendaRepository
	dispatcher  *Dispatcher
	rdb         *redis.Client
	storagePath string
	nomeLoja    string
}

func NewReciboWorker(
	vendaRepo repository.VendaRepository,
	dispatcher *Dispatcher,
	rdb *redis.Client,
	storagePath, nomeLoja string,
) *ReciboWorker {
	return &ReciboWorker{
		vendaRepo:   vendaRepo,
		dispatcher:  dispatcher,
		rdb:         rdb,
		storagePath: storagePath,
		nomeLoja:    nomeLoja,
	}
}

func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return
	}
	vendaID, err := uuid.Parse(payload.VendaID)
	if err != nil {
		log.Error().Str("venda_id", payload.VendaID).Msg("recibo_worker: invalid venda_id")
		return
	}

	var pdfPath string
	err = withRetry(ctx, maxReciboAttempts, func(attempt int) error {
		venda, err := w.vendaRepo.FindByID(ctx, vendaID)
		if err != nil {
			return fmt.Errorf("load venda: %w", err)
		}
		pdfPath, err = infra.GenerateReciboPDF(venda, w.storagePath, w.nomeLoja)
		if err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}

		if venda.Cliente != nil && venda.Cliente.Email != nil && *venda.Cliente.Email != "" {
			return w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
				ToEmail: *venda.Cliente.Email,
				Subject: fmt.Sprintf("%s — Recibo da compra %s", w.nomeLoja, venda.NumeroNotaFiscal),
				Body:    fmt.Sprintf("Olá %s,\n\nSegue em anexo o recibo da sua compra.\n\n%s", venda.Cliente.Nome, w.nomeLoja),
				PDFPath: pdfPath,
			})
		}
		return nil
	})
	if err != nil {
		SendToDLQ(ctx, w.rdb, QueueRecibo, "recibo", raw, err.Error(), maxReciboAttempts)
		return
	}
	log.Info().Str("venda_id", payload.VendaID).Str("pdf", pdfPath).Msg("recibo_worker: recibo generated")
}

// withRetry runs fn up to maxAttempts times with linear backoff.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}
		log.Warn().Err(err).Int("attempt", attempt).Msg("recibo_worker: attempt failed")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
	return err
}
