package backend

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/corpcrawl/internal/application/dto"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// CrawlService lógica de crawl del backend de pruebas: cobra un crédito por
// unidad de trabajo y completa cada petición con un enriquecimiento fabricado
// (el enriquecimiento real queda fuera de alcance; aquí sólo importa que los
// estados sean observables y el ledger de créditos se comporte como el real).
type CrawlService struct {
	users     repository.UserStore
	crawls    repository.CrawlStore
	companies repository.CompanyStore
	maxRows   int
}

// NewCrawlService construye el servicio de crawl del stub.
func NewCrawlService(users repository.UserStore, crawls repository.CrawlStore, companies repository.CompanyStore, maxRows int) *CrawlService {
	if maxRows <= 0 {
		maxRows = 10000
	}
	return &CrawlService{users: users, crawls: crawls, companies: companies, maxRows: maxRows}
}

// Submit crea una petición individual descontando un crédito de forma atómica.
func (s *CrawlService) Submit(userID string, in dto.CrawlSubmitRequest) (*entity.CrawlRequest, error) {
	if !entity.ValidInputType(in.InputType) {
		return nil, fmt.Errorf("%w: tipo de entrada %q", domain.ErrInvalidInput, in.InputType)
	}
	value := strings.TrimSpace(in.InputValue)
	if value == "" {
		return nil, fmt.Errorf("%w: valor de entrada vacío", domain.ErrInvalidInput)
	}
	if _, err := s.users.AdjustCredits(userID, -1); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	req := &entity.CrawlRequest{
		ID:         uuid.New().String(),
		UserID:     userID,
		InputType:  in.InputType,
		InputValue: value,
		Status:     entity.StatusPending,
		CreatedAt:  now,
	}
	if err := s.crawls.Create(req); err != nil {
		return nil, err
	}
	s.enrich(req)
	return req, nil
}

// enrich completa la petición de forma síncrona con datos fabricados y la
// publica en el ledger central. Una URL de LinkedIn que no lo es falla, para
// que el estado failed también sea observable.
func (s *CrawlService) enrich(req *entity.CrawlRequest) {
	done := time.Now().UTC()
	if req.InputType == entity.InputLinkedInURL && !strings.Contains(req.InputValue, "linkedin.com") {
		req.Status = entity.StatusFailed
		req.Error = "la URL no pertenece a linkedin.com"
		req.CompletedAt = &done
		_ = s.crawls.Update(req)
		return
	}
	company := &entity.CompanyData{
		ID:              uuid.New().String(),
		ConfidenceScore: 0.7,
		DataSources:     []string{"stub"},
		LastCrawled:     done,
	}
	switch req.InputType {
	case entity.InputDomain:
		company.Domain = req.InputValue
		company.CompanyName = strings.TrimSuffix(req.InputValue, ".com")
	case entity.InputCompanyName:
		company.CompanyName = req.InputValue
	case entity.InputLinkedInURL:
		company.LinkedInURL = req.InputValue
	}
	_ = s.companies.Upsert(company)
	req.Status = entity.StatusCompleted
	req.Result = company
	req.CompletedAt = &done
	_ = s.crawls.Update(req)
}

// Get devuelve una petición del usuario; las de otros usuarios no existen para él.
func (s *CrawlService) Get(userID, id string) (*entity.CrawlRequest, error) {
	req, err := s.crawls.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return req, nil
}

// History lista las peticiones del usuario, más recientes primero.
func (s *CrawlService) History(userID string, limit int) ([]entity.CrawlRequest, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.crawls.ListByUser(userID, limit)
}

// BulkCheck valida el fichero sin comprometerlo: cuenta filas, calcula el
// coste (un crédito por fila válida) y lo contrasta con el saldo fresco.
// Cero filas válidas nunca es procedente, da igual el saldo.
func (s *CrawlService) BulkCheck(userID, filename string, file []byte) (*entity.BulkCheckResult, error) {
	total, values, err := s.parseRows(filename, file)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	required := len(values)
	available := user.Credits
	needed := required - available
	if needed < 0 {
		needed = 0
	}
	return &entity.BulkCheckResult{
		TotalRows:        total,
		ValidRows:        required,
		RequiredCredits:  required,
		AvailableCredits: available,
		CanProceed:       required > 0 && available >= required,
		CreditsNeeded:    needed,
	}, nil
}

// BulkUpload compromete el fichero: revalida el saldo contra el valor vivo
// (402 si no alcanza) y crea una petición por fila válida.
func (s *CrawlService) BulkUpload(userID, filename string, file []byte, inputType string) (*entity.BulkUploadResult, error) {
	if !entity.ValidInputType(inputType) {
		return nil, fmt.Errorf("%w: tipo de entrada %q", domain.ErrInvalidInput, inputType)
	}
	_, values, err := s.parseRows(filename, file)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, domain.Rejectedf("el fichero no tiene filas válidas")
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Credits < len(values) {
		return nil, fmt.Errorf("%w: se requieren %d y hay %d", domain.ErrInsufficientCredits, len(values), user.Credits)
	}
	ids := make([]string, 0, len(values))
	failed := 0
	for _, v := range values {
		req, err := s.Submit(userID, dto.CrawlSubmitRequest{InputType: inputType, InputValue: v})
		if err != nil {
			failed++
			continue
		}
		ids = append(ids, req.ID)
	}
	return &entity.BulkUploadResult{
		Message:        fmt.Sprintf("Creadas %d peticiones de crawl", len(ids)),
		RequestIDs:     ids,
		TotalProcessed: len(ids),
		TotalFailed:    failed,
	}, nil
}

// CentralLedger lectura transversal del ledger de empresas.
func (s *CrawlService) CentralLedger(limit int) ([]entity.CompanyData, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return s.companies.List(limit)
}

// parseRows extrae la primera columna de un CSV. La primera línea es cabecera;
// una fila es válida si su primera columna no queda vacía tras recortar.
func (s *CrawlService) parseRows(filename string, file []byte) (total int, values []string, err error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return 0, nil, domain.Rejectedf("formato de fichero inválido, use CSV")
	}
	r := csv.NewReader(bytes.NewReader(file))
	r.FieldsPerRecord = -1
	header := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, nil, domain.Rejectedf("CSV ilegible: %v", err)
		}
		if header {
			header = false
			continue
		}
		total++
		if total > s.maxRows {
			return 0, nil, domain.Rejectedf("máximo %d filas por carga bulk", s.maxRows)
		}
		if len(record) == 0 {
			continue
		}
		v := strings.TrimSpace(record[0])
		if v == "" {
			continue
		}
		values = append(values, v)
	}
	return total, values, nil
}
