package services

import (
	"context"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
	"github.com/pkg/errors"

	"github.com/bhavanavimanjulkar2/Wanderlust/configs"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
)

// MediaService supplies and retires the (url, filename) pairs stored on
// listings. The filename doubles as the provider-side asset id.
type MediaService interface {
	FileUpload(ctx context.Context, file models.File) (models.ListingImage, error)
	DestroyMedia(ctx context.Context, filename string) error
}

type CloudinaryMediaService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryMediaService() (*CloudinaryMediaService, error) {
	cld, err := cloudinary.NewFromParams(
		configs.LoadEnvFor("CLOUDINARY_CLOUDNAME"),
		configs.LoadEnvFor("CLOUDINARY_API_KEY"),
		configs.LoadEnvFor("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "initializing cloudinary")
	}

	return &CloudinaryMediaService{
		cld:    cld,
		folder: configs.LoadEnvFor("CLOUDINARY_UPLOAD_FOLDER"),
	}, nil
}

func (s *CloudinaryMediaService) FileUpload(ctx context.Context, file models.File) (models.ListingImage, error) {
	if err := models.Validate.Struct(file); err != nil {
		return models.ListingImage{}, err
	}

	uploadRes, err := s.cld.Upload.Upload(ctx, file.File, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return models.ListingImage{}, errors.Wrap(err, "uploading image")
	}

	return models.ListingImage{URL: uploadRes.SecureURL, Filename: uploadRes.PublicID}, nil
}

func (s *CloudinaryMediaService) DestroyMedia(ctx context.Context, filename string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: filename}); err != nil {
		return errors.Wrap(err, "destroying image")
	}
	return nil
}
