package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/corpcrawl/internal/application/crawl"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

func (a *App) cmdSubmit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	inputType := fs.String("type", entity.InputDomain, "domain | company_name | linkedin_url")
	value := fs.String("value", "", "valor a enriquecer")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	req, err := a.Crawl.Submit(ctx, *inputType, *value)
	if err != nil {
		return err
	}
	a.printRequest(req)
	credits, _ := a.Session.Credits()
	fmt.Fprintf(a.Out, "créditos restantes (estimado): %d\n", credits)
	return nil
}

func (a *App) cmdGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	id := fs.String("id", "", "id de la petición")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	req, err := a.Crawl.Get(ctx, *id)
	if err != nil {
		return err
	}
	a.printRequest(req)
	return nil
}

func (a *App) cmdHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	limit := fs.Int("limit", 50, "máximo de peticiones a listar")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	reqs, err := a.Crawl.History(ctx, *limit)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		fmt.Fprintln(a.Out, "sin peticiones")
		return nil
	}
	for _, r := range reqs {
		name := ""
		if r.Result != nil {
			name = r.Result.CompanyName
		}
		fmt.Fprintf(a.Out, "%s %s  %-12s %-30s %s\n",
			crawl.StatusGlyph(r.Status), r.ID, r.InputType, r.InputValue, name)
	}
	return nil
}

// cmdBulk ejecuta las dos fases: comprueba el fichero, muestra la revisión y
// sólo compromete con confirmación explícita (o -yes) y comprobación procedente.
func (a *App) cmdBulk(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bulk", flag.ContinueOnError)
	file := fs.String("file", "", "fichero CSV (primera columna = valores, primera fila = cabecera)")
	inputType := fs.String("type", entity.InputDomain, "domain | company_name | linkedin_url")
	yes := fs.Bool("yes", false, "confirmar sin preguntar")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("%w: -file es requerido", domain.ErrInvalidInput)
	}
	payload, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("leer %s: %w", *file, err)
	}

	check, err := a.Bulk.Select(ctx, *file, payload, *inputType)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "filas totales:       %d\n", check.TotalRows)
	fmt.Fprintf(a.Out, "filas válidas:       %d\n", check.ValidRows)
	fmt.Fprintf(a.Out, "créditos requeridos: %d\n", check.RequiredCredits)
	fmt.Fprintf(a.Out, "créditos disponibles:%d\n", check.AvailableCredits)
	if !check.CanProceed {
		a.Bulk.Cancel()
		if check.CreditsNeeded > 0 {
			return fmt.Errorf("%w: faltan %d créditos", domain.ErrInsufficientCredits, check.CreditsNeeded)
		}
		return fmt.Errorf("%w: el fichero no tiene filas válidas", domain.ErrRejected)
	}
	if !*yes && !a.confirm(fmt.Sprintf("comprometer %d créditos", check.RequiredCredits)) {
		a.Bulk.Cancel()
		fmt.Fprintln(a.Out, "carga cancelada; no se gastó nada")
		return nil
	}
	result, err := a.Bulk.Confirm(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s (procesadas %d, fallidas %d)\n", result.Message, result.TotalProcessed, result.TotalFailed)
	return nil
}

// companiesFromHistory extrae los resultados de las peticiones completadas.
func companiesFromHistory(reqs []entity.CrawlRequest) []entity.CompanyData {
	var out []entity.CompanyData
	for _, r := range reqs {
		if r.Status == entity.StatusCompleted && r.Result != nil {
			out = append(out, *r.Result)
		}
	}
	return out
}

func (a *App) printRequest(r *entity.CrawlRequest) {
	fmt.Fprintf(a.Out, "%s %s\n  tipo: %s  valor: %s  estado: %s\n",
		crawl.StatusGlyph(r.Status), r.ID, r.InputType, r.InputValue, r.Status)
	if r.Error != "" {
		fmt.Fprintf(a.Out, "  error: %s\n", r.Error)
	}
	if r.Result != nil {
		fmt.Fprintf(a.Out, "  empresa: %s  dominio: %s  confianza: %.2f\n",
			r.Result.CompanyName, r.Result.Domain, r.Result.ConfidenceScore)
	}
}
