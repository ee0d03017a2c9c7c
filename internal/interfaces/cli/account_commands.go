package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/corpcrawl/internal/domain"
)

func (a *App) cmdTokens(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		toks, err := a.Tokens.List(ctx)
		if err != nil {
			return err
		}
		if len(toks) == 0 {
			fmt.Fprintln(a.Out, "sin tokens")
			return nil
		}
		for _, t := range toks {
			state := "activo"
			if !t.IsActive {
				state = "inactivo"
			}
			exp := "sin expiración"
			if t.ExpiresAt != nil {
				exp = t.ExpiresAt.Format(time.DateOnly)
			}
			fmt.Fprintf(a.Out, "%s  %-20s ...%s  %-8s expira: %s  scopes: %s\n",
				t.ID, t.Name, t.TokenPreview, state, exp, strings.Join(t.Scopes, ","))
		}
		return nil
	case "create":
		fs := flag.NewFlagSet("tokens create", flag.ContinueOnError)
		name := fs.String("name", "", "nombre del token")
		scopes := fs.String("scopes", "", "scopes separados por coma (vacío = por defecto)")
		days := fs.Int("expires", 0, "días hasta expirar (0 = nunca)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var list []string
		if *scopes != "" {
			list = strings.Split(*scopes, ",")
		}
		tok, err := a.Tokens.Create(ctx, *name, list, *days)
		if err != nil {
			return err
		}
		// Única vez que el secreto completo es visible; no se persiste en el cliente.
		fmt.Fprintf(a.Out, "token creado: %s\nsecreto (guárdelo ahora, no volverá a mostrarse):\n%s\n", tok.ID, tok.Token)
		return nil
	case "revoke":
		fs := flag.NewFlagSet("tokens revoke", flag.ContinueOnError)
		id := fs.String("id", "", "id del token")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.Tokens.Revoke(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "token revocado")
		return nil
	case "toggle":
		fs := flag.NewFlagSet("tokens toggle", flag.ContinueOnError)
		id := fs.String("id", "", "id del token")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		tok, err := a.Tokens.Toggle(ctx, *id)
		if err != nil {
			return err
		}
		state := "activo"
		if !tok.IsActive {
			state = "inactivo"
		}
		fmt.Fprintf(a.Out, "token %s ahora %s\n", tok.ID, state)
		return nil
	default:
		return fmt.Errorf("%w: tokens %q desconocido (list|create|revoke|toggle)", domain.ErrInvalidInput, sub)
	}
}

func (a *App) cmdPlans(ctx context.Context) error {
	plans, err := a.Content.Plans(ctx)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Fprintln(a.Out, "sin planes")
		return nil
	}
	for _, p := range plans {
		state := ""
		if !p.IsActive {
			state = "  (inactivo)"
		}
		fmt.Fprintf(a.Out, "%-12s $%s  %d créditos%s\n", p.Name, p.Price.StringFixed(2), p.Credits, state)
	}
	return nil
}

func (a *App) cmdHubSpot(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"status"}
	}
	switch args[0] {
	case "status":
		st, err := a.CRM.Status(ctx)
		if err != nil {
			return err
		}
		if !st.Connected {
			fmt.Fprintln(a.Out, "hubspot: desconectado")
			return nil
		}
		fmt.Fprintf(a.Out, "hubspot: conectado (portal %s)\n", st.PortalID)
		if st.SyncedAt != nil {
			fmt.Fprintf(a.Out, "última sincronización: %s\n", st.SyncedAt.Format(time.RFC3339))
		}
		return nil
	case "connect":
		url, err := a.CRM.AuthURL(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "abra esta URL para autorizar:\n%s\n", url)
		return nil
	case "disconnect":
		if err := a.CRM.Disconnect(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "integración desconectada")
		return nil
	case "sync":
		// Sincroniza el resultado de las peticiones completadas del historial.
		reqs, err := a.Crawl.History(ctx, 100)
		if err != nil {
			return err
		}
		companies := companiesFromHistory(reqs)
		if len(companies) == 0 {
			fmt.Fprintln(a.Out, "no hay empresas completadas que sincronizar")
			return nil
		}
		result, err := a.CRM.SyncCompanies(ctx, companies)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "sincronizadas %d, fallidas %d\n", result.Successful, result.Failed)
		return nil
	default:
		return fmt.Errorf("%w: hubspot %q desconocido (status|connect|disconnect|sync)", domain.ErrInvalidInput, args[0])
	}
}
