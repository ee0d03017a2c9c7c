package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/jhoicas/corpcrawl/internal/domain"
	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

func (a *App) cmdBlogs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		blogs, err := a.Content.Blogs(ctx)
		if err != nil {
			return err
		}
		if len(blogs) == 0 {
			fmt.Fprintln(a.Out, "sin entradas")
			return nil
		}
		for _, b := range blogs {
			fmt.Fprintf(a.Out, "%-30s %s\n", b.Slug, b.Title)
		}
		return nil
	case "get":
		fs := flag.NewFlagSet("blogs get", flag.ContinueOnError)
		slug := fs.String("slug", "", "slug de la entrada")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		b, err := a.Content.Blog(ctx, *slug)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "# %s\n\n%s\n", b.Title, b.Content)
		return nil
	case "create":
		fs := flag.NewFlagSet("blogs create", flag.ContinueOnError)
		slug := fs.String("slug", "", "slug")
		title := fs.String("title", "", "título")
		body := fs.String("content", "", "contenido")
		publish := fs.Bool("publish", false, "publicar")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		b, err := a.Content.CreateBlog(ctx, entity.Blog{
			Slug: *slug, Title: *title, Content: *body, IsPublished: *publish,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "entrada creada: %s\n", b.Slug)
		return nil
	case "update":
		fs := flag.NewFlagSet("blogs update", flag.ContinueOnError)
		slug := fs.String("slug", "", "slug de la entrada")
		title := fs.String("title", "", "nuevo título (vacío = sin cambio)")
		body := fs.String("content", "", "nuevo contenido (vacío = sin cambio)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var patch repository.BlogPatch
		if *title != "" {
			patch.Title = title
		}
		if *body != "" {
			patch.Content = body
		}
		b, err := a.Content.UpdateBlog(ctx, *slug, patch)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "entrada actualizada: %s\n", b.Slug)
		return nil
	case "delete":
		fs := flag.NewFlagSet("blogs delete", flag.ContinueOnError)
		slug := fs.String("slug", "", "slug de la entrada")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.Content.DeleteBlog(ctx, *slug); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "entrada eliminada")
		return nil
	default:
		return fmt.Errorf("%w: blogs %q desconocido (list|get|create|update|delete)", domain.ErrInvalidInput, sub)
	}
}

func (a *App) cmdFAQs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		faqs, err := a.Content.FAQs(ctx)
		if err != nil {
			return err
		}
		if len(faqs) == 0 {
			fmt.Fprintln(a.Out, "sin FAQs")
			return nil
		}
		for _, f := range faqs {
			fmt.Fprintf(a.Out, "[%s] %s\n  %s\n", f.ID, f.Question, f.Answer)
		}
		return nil
	case "create":
		fs := flag.NewFlagSet("faqs create", flag.ContinueOnError)
		question := fs.String("question", "", "pregunta")
		answer := fs.String("answer", "", "respuesta")
		category := fs.String("category", "", "categoría")
		order := fs.Int("order", 0, "orden de presentación")
		publish := fs.Bool("publish", false, "publicar")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		f, err := a.Content.CreateFAQ(ctx, entity.FAQ{
			Question: *question, Answer: *answer, Category: *category,
			Order: *order, IsPublished: *publish,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "FAQ creada: %s\n", f.ID)
		return nil
	case "update":
		fs := flag.NewFlagSet("faqs update", flag.ContinueOnError)
		id := fs.String("id", "", "id de la FAQ")
		question := fs.String("question", "", "nueva pregunta (vacío = sin cambio)")
		answer := fs.String("answer", "", "nueva respuesta (vacío = sin cambio)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var patch repository.FAQPatch
		if *question != "" {
			patch.Question = question
		}
		if *answer != "" {
			patch.Answer = answer
		}
		f, err := a.Content.UpdateFAQ(ctx, *id, patch)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "FAQ actualizada: %s\n", f.ID)
		return nil
	case "delete":
		fs := flag.NewFlagSet("faqs delete", flag.ContinueOnError)
		id := fs.String("id", "", "id de la FAQ")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.Content.DeleteFAQ(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintln(a.Out, "FAQ eliminada")
		return nil
	default:
		return fmt.Errorf("%w: faqs %q desconocido (list|create|update|delete)", domain.ErrInvalidInput, sub)
	}
}
