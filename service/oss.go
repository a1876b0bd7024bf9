package service

import (
	"Civix/config"
	"Civix/dao"
	"Civix/models"
	"Civix/pkg/snowflake"
	"Civix/types"
	"context"
	"strings"

	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

type OssService struct {
	Client     *oss.Client
	BucketName string
	ImageRepo  *dao.Image
}

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadReviewPhoto 表单上传评价配图
	UploadReviewPhoto(ctx context.Context, userID int64, header *multipart.FileHeader) (*types.UploadImageResp, error)
}

func (s *OssService) UploadReviewPhoto(ctx context.Context, userID int64, header *multipart.FileHeader) (*types.UploadImageResp, error) {

	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return nil, fmt.Errorf("missing image")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// 要能 Seek，否则无法在读头校验后再上传同一份流
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	// 1) MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 2) 读取尺寸 + 格式（不解码全图）
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	allowedFmt := map[string]bool{"jpeg": true, "png": true, "webp": true}
	if !allowedFmt[format] {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 3) 生成 ID / objectKey
	imageID := snowflake.GenID()
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("review/%s/%d%s",
		time.Now().Format("2006/01/02"),
		imageID,
		ext,
	)

	// 4) 上传 OSS（强制限制读取）
	limited := io.LimitReader(seeker, maxSize+1)

	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	// 5) 写 image 表（status=uploaded）
	img := models.Image{
		ID:        imageID,
		UserID:    userID,
		OssKey:    objectKey,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Status:    types.ImageStatusUploaded,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.ImageRepo.CreateImage(ctx, &img); err != nil {
		return nil, err
	}
	return &types.UploadImageResp{
		ImageID: imageID,
		Key:     objectKey,
		Url:     "https://cdn.civix.city/" + objectKey,
		Width:   cfg.Width,
		Height:  cfg.Height,
	}, nil
}

func NewOssService(cfg *config.OssConfig, imageRepo *dao.Image) IOssService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	client := oss.NewClient(ossCfg)

	return &OssService{
		Client:     client,
		BucketName: cfg.Bucket,
		ImageRepo:  imageRepo,
	}
}
