package usecase

import (
	"context"
	"io"
	"time"

	"dropfit/internal/domain/entity"
	"dropfit/internal/domain/repository"
	"dropfit/internal/domain/service"
	"dropfit/pkg/errors"
)

type CommunityUseCase struct {
	communityRepo repository.CommunityRepository
	fileService   service.FileUploadService
}

func NewCommunityUseCase(communityRepo repository.CommunityRepository, fileService service.FileUploadService) *CommunityUseCase {
	return &CommunityUseCase{
		communityRepo: communityRepo,
		fileService:   fileService,
	}
}

const maxCaptionLength = 280

// CreatePost uploads the photo first so a failed upload never leaves a post
// without an image.
func (uc *CommunityUseCase) CreatePost(ctx context.Context, userName, caption string, image io.Reader, contentType string) (*entity.CommunityPost, error) {
	if userName == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}
	if image == nil {
		return nil, errors.BadRequest("A photo is required", nil)
	}
	if len(caption) > maxCaptionLength {
		return nil, errors.BadRequest("Caption is too long", nil)
	}

	imageURL, err := uc.fileService.UploadFile(ctx, image, contentType, "community")
	if err != nil {
		return nil, err
	}

	post := &entity.CommunityPost{
		UserName:  userName,
		ImageURL:  imageURL,
		Caption:   caption,
		CreatedAt: time.Now(),
	}

	if err := uc.communityRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (uc *CommunityUseCase) ListPosts(ctx context.Context, limit int) ([]*entity.CommunityPost, error) {
	return uc.communityRepo.List(ctx, limit)
}
