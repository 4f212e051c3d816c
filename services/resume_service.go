package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"jobswipe_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const resumePrefix = "resumes/"

// Presigner is the subset of *s3.PresignClient used for resumes.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ResumeService hands out presigned S3 links for candidate resumes. The
// server never touches the file bytes.
type ResumeService struct {
	Presigner Presigner
	Bucket    string
	TTL       time.Duration
	Now       func() time.Time
}

// NewResumeService builds a presign client from the default AWS credential
// chain.
func NewResumeService(ctx context.Context, region, bucket string, ttl time.Duration) (*ResumeService, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &ResumeService{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    bucket,
		TTL:       ttl,
	}, nil
}

// UploadURL returns a presigned PUT URL and the object key the client must
// later save on its profile.
func (rs *ResumeService) UploadURL(ctx context.Context, userID, fileName, contentType string) (string, string, error) {
	name := sanitizeFileName(fileName)
	if userID == "" || name == "" {
		return "", "", fmt.Errorf("fileName is required: %w", models.ErrInvalidInput)
	}

	key := resumePrefix + userID + "/" + now(rs.Now).Format("20060102150405") + "-" + name
	params := &s3.PutObjectInput{
		Bucket: aws.String(rs.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		params.ContentType = aws.String(contentType)
	}

	req, err := rs.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(rs.TTL))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return req.URL, key, nil
}

// ReadURL returns a presigned GET URL for key.
func (rs *ResumeService) ReadURL(ctx context.Context, key string) (string, error) {
	req, err := rs.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(rs.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(rs.TTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return req.URL, nil
}

// OwnsKey reports whether key lives under the user's resume prefix.
func OwnsKey(userID, key string) bool {
	return userID != "" && strings.HasPrefix(key, resumePrefix+userID+"/") && !strings.Contains(key, "..")
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(path.Base(strings.ReplaceAll(name, "\\", "/")))
	if name == "." || name == "/" {
		return ""
	}
	return strings.ReplaceAll(name, " ", "_")
}
