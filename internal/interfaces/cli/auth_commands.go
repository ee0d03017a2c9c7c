package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/jhoicas/corpcrawl/internal/application/session"
	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
)

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "email de la cuenta")
	password := fs.String("password", "", "contraseña (mínimo 8 caracteres)")
	name := fs.String("name", "", "nombre completo")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" || *name == "" {
		return fmt.Errorf("%w: -email, -password y -name son requeridos", domain.ErrInvalidInput)
	}
	user, err := a.Session.Register(ctx, *email, *password, *name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "cuenta creada: %s (%s), %d créditos\n", user.Email, user.CurrentPlan, user.Credits)
	return nil
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email de la cuenta")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("%w: -email y -password son requeridos", domain.ErrInvalidInput)
	}
	user, err := a.Session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "sesión abierta como %s\n", user.Email)
	return nil
}

func (a *App) cmdLogout() error {
	a.Session.Logout()
	fmt.Fprintln(a.Out, "sesión cerrada")
	return nil
}

func (a *App) cmdWhoami(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	refresh := fs.Bool("refresh", false, "recargar identidad desde el backend")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}
	var user *entity.User
	if *refresh {
		u, err := a.Session.RefreshIdentity(ctx)
		if err != nil {
			return err
		}
		user = u
	} else {
		user = a.Session.User()
	}
	credits, confidence := a.Session.Credits()
	mark := ""
	if confidence == session.ConfidenceOptimistic {
		mark = " (estimado)"
	}
	fmt.Fprintf(a.Out, "%s <%s>\nrol: %s  plan: %s\ncréditos: %d%s\n",
		user.FullName, user.Email, user.Role, user.CurrentPlan, credits, mark)
	return nil
}
