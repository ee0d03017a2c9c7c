package crawl

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/corpcrawl/internal/application/session"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
	"github.com/jhoicas/corpcrawl/pkg/logger"
)

// Service envío individual y proyección de historial/estado. La proyección es
// sólo lectura: el estado de una petición lo decide siempre el backend y el
// cliente lo refleja tal cual, incluso un processing que no avanza.
type Service struct {
	gw   repository.CrawlGateway
	sess *session.Session
	log  *logger.Logger
}

// NewService construye el servicio de crawl.
func NewService(gw repository.CrawlGateway, sess *session.Session, log *logger.Logger) *Service {
	return &Service{gw: gw, sess: sess, log: log}
}

// Submit crea una petición individual. Si el backend la acepta, descuenta un
// crédito de la caché local de forma optimista; el siguiente refresco de
// identidad sobrescribe con el valor autoritativo.
func (s *Service) Submit(ctx context.Context, inputType, inputValue string) (*entity.CrawlRequest, error) {
	inputValue = strings.TrimSpace(inputValue)
	if !entity.ValidInputType(inputType) {
		return nil, fmt.Errorf("%w: tipo de entrada %q", domain.ErrInvalidInput, inputType)
	}
	if inputValue == "" {
		return nil, fmt.Errorf("%w: valor de entrada vacío", domain.ErrInvalidInput)
	}
	req, err := s.gw.SubmitSingle(ctx, inputType, inputValue)
	if err != nil {
		return nil, err
	}
	s.sess.AdjustCreditsLocally(-1)
	s.log.Debug().Str("request_id", req.ID).Str("input", inputValue).Msg("petición individual creada")
	return req, nil
}

// Get recupera una petición por id.
func (s *Service) Get(ctx context.Context, id string) (*entity.CrawlRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id vacío", domain.ErrInvalidInput)
	}
	return s.gw.GetRequest(ctx, id)
}

// History lista las peticiones del usuario, más recientes primero.
func (s *Service) History(ctx context.Context, limit int) ([]entity.CrawlRequest, error) {
	return s.gw.History(ctx, limit)
}

// StatusGlyph símbolo de presentación por estado para los listados del CLI.
func StatusGlyph(status string) string {
	switch status {
	case entity.StatusPending:
		return "·"
	case entity.StatusProcessing:
		return "~"
	case entity.StatusCompleted:
		return "✓"
	case entity.StatusFailed:
		return "✗"
	}
	return "?"
}
