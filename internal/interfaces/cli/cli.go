package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/corpcrawl/internal/application/admin"
	"github.com/jhoicas/corpcrawl/internal/application/content"
	"github.com/jhoicas/corpcrawl/internal/application/crawl"
	"github.com/jhoicas/corpcrawl/internal/application/crm"
	"github.com/jhoicas/corpcrawl/internal/application/session"
	"github.com/jhoicas/corpcrawl/internal/application/tokens"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/pkg/logger"
)

// App agrupa los casos de uso del cliente y despacha subcomandos.
type App struct {
	Session *session.Session
	Crawl   *crawl.Service
	Bulk    *crawl.BulkController
	Tokens  *tokens.UseCase
	Content *content.UseCase
	Admin   *admin.UseCase
	CRM     *crm.UseCase
	Log     *logger.Logger

	Out io.Writer
	In  io.Reader
}

// Run despacha el subcomando. Devuelve error para que main decida el exit code.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("%w: falta el subcomando", domain.ErrInvalidInput)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.cmdRegister(ctx, rest)
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout()
	case "whoami":
		return a.cmdWhoami(ctx, rest)
	case "submit":
		return a.cmdSubmit(ctx, rest)
	case "get":
		return a.cmdGet(ctx, rest)
	case "history":
		return a.cmdHistory(ctx, rest)
	case "bulk":
		return a.cmdBulk(ctx, rest)
	case "tokens":
		return a.cmdTokens(ctx, rest)
	case "blogs":
		return a.cmdBlogs(ctx, rest)
	case "faqs":
		return a.cmdFAQs(ctx, rest)
	case "plans":
		return a.cmdPlans(ctx)
	case "hubspot":
		return a.cmdHubSpot(ctx, rest)
	case "admin":
		return a.cmdAdmin(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("%w: subcomando %q desconocido", domain.ErrInvalidInput, cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.Out, `corpcrawl — cliente de enriquecimiento de empresas

Uso: corpcrawl <subcomando> [flags]

Sesión:
  register   -email -password -name     alta y apertura de sesión
  login      -email -password           apertura de sesión
  logout                                cierre de sesión local
  whoami     [-refresh]                 identidad y saldo cacheados

Crawl:
  submit     -type -value               petición individual (cuesta 1 crédito)
  get        -id                        estado de una petición
  history    [-limit]                   historial, más recientes primero
  bulk       -file [-type] [-yes]       carga bulk en dos fases (CSV)

Cuenta:
  tokens     list|create|revoke|toggle  tokens de API
  plans                                 catálogo de planes
  hubspot    status|connect|disconnect|sync

Contenido:
  blogs      list|get|create|update|delete
  faqs       list|create|update|delete

Admin (superadmin):
  admin      users|credits|status|plan|plans|ledger`)
}

// confirm pregunta s/N por stdin; cualquier cosa distinta de "s"/"y" es no.
func (a *App) confirm(prompt string) bool {
	fmt.Fprintf(a.Out, "%s [s/N]: ", prompt)
	r := bufio.NewReader(a.In)
	line, err := r.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "s" || line == "si" || line == "y" || line == "yes"
}

// requireAuth corta en el cliente los comandos que van a fallar seguro sin sesión.
func (a *App) requireAuth() error {
	if !a.Session.Authenticated() {
		return fmt.Errorf("%w: no hay sesión; use login", domain.ErrUnauthorized)
	}
	return nil
}

// Explain traduce la taxonomía de errores a un mensaje de salida para humanos.
func Explain(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientCredits):
		return "créditos insuficientes: " + err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return "sesión inválida o expirada; use login"
	case errors.Is(err, domain.ErrForbidden):
		return "operación no permitida: " + err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "no encontrado"
	case errors.Is(err, domain.ErrTransport):
		return "el backend no responde: " + err.Error()
	default:
		return err.Error()
	}
}
