package crawl

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
	"github.com/jhoicas/corpcrawl/pkg/logger"
)

// BulkState estado del controlador de envío bulk en dos fases.
type BulkState string

const (
	StateIdle       BulkState = "idle"
	StateChecking   BulkState = "checking"
	StateReviewed   BulkState = "reviewed"
	StateCommitting BulkState = "committing"
)

// BulkController máquina de estados Idle → Checking → Reviewed → Committing →
// Idle. Invariante central: un fichero nunca se compromete sin una
// comprobación procedente sobre el MISMO payload y confirmación explícita.
// El payload se captura una vez en Select; las dos fases envían los mismos
// bytes, de modo que sustituir el fichero en disco entre fases no cambia nada.
type BulkController struct {
	mu  sync.Mutex
	gw  repository.CrawlGateway
	log *logger.Logger

	state     BulkState
	filename  string
	payload   []byte
	inputType string
	check     *entity.BulkCheckResult

	// onCommitted se dispara tras un commit (con o sin fallos parciales) para
	// que la vista refresque el historial.
	onCommitted func()
}

// NewBulkController construye el controlador en Idle.
func NewBulkController(gw repository.CrawlGateway, log *logger.Logger, onCommitted func()) *BulkController {
	return &BulkController{gw: gw, log: log, state: StateIdle, onCommitted: onCommitted}
}

// State devuelve el estado actual.
func (c *BulkController) State() BulkState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Check devuelve el resultado de la comprobación vigente (sólo en Reviewed).
func (c *BulkController) Check() *entity.BulkCheckResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.check == nil {
		return nil
	}
	r := *c.check
	return &r
}

// Select captura la selección de fichero y lanza la fase de comprobación.
// Sólo es válido desde Idle: mientras una transición vuela no se admite otra
// selección. Ante cualquier error se vuelve a Idle descartando la selección.
func (c *BulkController) Select(ctx context.Context, filename string, payload []byte, inputType string) (*entity.BulkCheckResult, error) {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: hay una operación bulk en curso (%s)", domain.ErrRejected, c.state)
	}
	if !entity.ValidInputType(inputType) {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: tipo de entrada %q", domain.ErrInvalidInput, inputType)
	}
	buf := make([]byte, len(payload))
	copy(buf, payload)
	c.state = StateChecking
	c.filename = filename
	c.payload = buf
	c.inputType = inputType
	c.check = nil
	c.mu.Unlock()

	result, err := c.gw.BulkCheck(ctx, filename, buf)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.resetLocked()
		return nil, err
	}
	c.state = StateReviewed
	c.check = result
	c.log.Debug().
		Int("total_rows", result.TotalRows).
		Int("valid_rows", result.ValidRows).
		Bool("can_proceed", result.CanProceed).
		Msg("fichero comprobado")
	r := *result
	return &r, nil
}

// Cancel descarta la selección y la comprobación vigentes; no hay efectos que
// deshacer porque nada se comprometió. Fuera de Reviewed es un no-op.
func (c *BulkController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReviewed {
		return
	}
	c.resetLocked()
}

// Confirm compromete el fichero comprobado. El propio controlador rechaza la
// confirmación si no hay comprobación procedente: con can_proceed falso la
// operación de commit no se invoca jamás, aunque se llame programáticamente.
func (c *BulkController) Confirm(ctx context.Context) (*entity.BulkUploadResult, error) {
	c.mu.Lock()
	if c.state != StateReviewed || c.check == nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: no hay comprobación vigente que confirmar", domain.ErrRejected)
	}
	if !c.check.CanProceed {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %w: faltan %d créditos", domain.ErrRejected, domain.ErrInsufficientCredits, c.check.CreditsNeeded)
	}
	filename, payload, inputType := c.filename, c.payload, c.inputType
	c.state = StateCommitting
	c.mu.Unlock()

	result, err := c.gw.BulkUpload(ctx, filename, payload, inputType)

	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}
	c.log.Debug().
		Int("total_processed", result.TotalProcessed).
		Int("total_failed", result.TotalFailed).
		Msg("fichero comprometido")
	if c.onCommitted != nil {
		c.onCommitted()
	}
	return result, nil
}

// resetLocked vuelve a Idle descartando selección y comprobación. Requiere c.mu.
func (c *BulkController) resetLocked() {
	c.state = StateIdle
	c.filename = ""
	c.payload = nil
	c.inputType = ""
	c.check = nil
}
