package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

func (a *App) cmdAdmin(ctx context.Context, args []string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: admin requiere subcomando (users|credits|status|plan|plans|ledger)", domain.ErrInvalidInput)
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "users":
		users, err := a.Admin.Users(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			state := "activo"
			if !u.IsActive {
				state = "inactivo"
			}
			fmt.Fprintf(a.Out, "%s  %-30s %-10s %-10s %4d créditos  %s\n",
				u.ID, u.Email, u.Role, u.CurrentPlan, u.Credits, state)
		}
		return nil
	case "credits":
		fs := flag.NewFlagSet("admin credits", flag.ContinueOnError)
		user := fs.String("user", "", "id del usuario")
		credits := fs.Int("set", -1, "saldo a fijar")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.Admin.SetUserCredits(ctx, *user, *credits); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "saldo de %s fijado en %d\n", *user, *credits)
		return nil
	case "status":
		fs := flag.NewFlagSet("admin status", flag.ContinueOnError)
		user := fs.String("user", "", "id del usuario")
		active := fs.Bool("active", true, "activo o no")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.Admin.SetUserStatus(ctx, *user, *active); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "estado actualizado")
		return nil
	case "plan":
		fs := flag.NewFlagSet("admin plan", flag.ContinueOnError)
		user := fs.String("user", "", "id del usuario")
		plan := fs.String("name", "", "Free | Starter | Pro | Enterprise")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.Admin.SetUserPlan(ctx, *user, *plan); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "plan %s asignado a %s\n", *plan, *user)
		return nil
	case "plans":
		return a.cmdAdminPlans(ctx, rest)
	case "ledger":
		fs := flag.NewFlagSet("admin ledger", flag.ContinueOnError)
		limit := fs.Int("limit", 100, "máximo de empresas")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		companies, err := a.Admin.CentralLedger(ctx, *limit)
		if err != nil {
			return err
		}
		if len(companies) == 0 {
			fmt.Fprintln(a.Out, "ledger vacío")
			return nil
		}
		for _, c := range companies {
			fmt.Fprintf(a.Out, "%-30s %-25s confianza %.2f\n", c.CompanyName, c.Domain, c.ConfidenceScore)
		}
		return nil
	default:
		return fmt.Errorf("%w: admin %q desconocido", domain.ErrInvalidInput, sub)
	}
}

func (a *App) cmdAdminPlans(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: admin plans requiere subcomando (create|delete)", domain.ErrInvalidInput)
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "create":
		fs := flag.NewFlagSet("admin plans create", flag.ContinueOnError)
		name := fs.String("name", "", "nombre del plan")
		price := fs.String("price", "", "precio decimal, ej. 29.99")
		credits := fs.Int("credits", 0, "créditos incluidos")
		active := fs.Bool("active", true, "activo")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		d, err := decimal.NewFromString(*price)
		if err != nil {
			return fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, *price)
		}
		p, err := a.Admin.CreatePlan(ctx, entity.Plan{
			Name: *name, Price: d, Credits: *credits, IsActive: *active,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "plan creado: %s (%s)\n", p.Name, p.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("admin plans delete", flag.ContinueOnError)
		id := fs.String("id", "", "id del plan")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.Admin.DeletePlan(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "plan eliminado")
		return nil
	default:
		return fmt.Errorf("%w: admin plans %q desconocido", domain.ErrInvalidInput, sub)
	}
}
