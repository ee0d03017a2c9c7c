package content

import (
	"context"

	"github.com/jhoicas/corpcrawl/internal/domain/entity"
	"github.com/jhoicas/corpcrawl/internal/domain/repository"
)

// UseCase lectura pública y CRUD de admin sobre blogs, FAQs y planes.
// Pass-through puro: opera sobre la entidad identificada o falla con NotFound.
type UseCase struct {
	gw repository.ContentGateway
}

// NewUseCase construye el caso de uso de contenido.
func NewUseCase(gw repository.ContentGateway) *UseCase {
	return &UseCase{gw: gw}
}

func (uc *UseCase) Blogs(ctx context.Context) ([]entity.Blog, error) { return uc.gw.Blogs(ctx) }

func (uc *UseCase) Blog(ctx context.Context, slug string) (*entity.Blog, error) {
	return uc.gw.Blog(ctx, slug)
}

func (uc *UseCase) CreateBlog(ctx context.Context, b entity.Blog) (*entity.Blog, error) {
	return uc.gw.CreateBlog(ctx, b)
}

func (uc *UseCase) UpdateBlog(ctx context.Context, slug string, patch repository.BlogPatch) (*entity.Blog, error) {
	return uc.gw.UpdateBlog(ctx, slug, patch)
}

func (uc *UseCase) DeleteBlog(ctx context.Context, slug string) error {
	return uc.gw.DeleteBlog(ctx, slug)
}

func (uc *UseCase) FAQs(ctx context.Context) ([]entity.FAQ, error) { return uc.gw.FAQs(ctx) }

func (uc *UseCase) CreateFAQ(ctx context.Context, f entity.FAQ) (*entity.FAQ, error) {
	return uc.gw.CreateFAQ(ctx, f)
}

func (uc *UseCase) UpdateFAQ(ctx context.Context, id string, patch repository.FAQPatch) (*entity.FAQ, error) {
	return uc.gw.UpdateFAQ(ctx, id, patch)
}

func (uc *UseCase) DeleteFAQ(ctx context.Context, id string) error {
	return uc.gw.DeleteFAQ(ctx, id)
}

func (uc *UseCase) Plans(ctx context.Context) ([]entity.Plan, error) { return uc.gw.Plans(ctx) }
