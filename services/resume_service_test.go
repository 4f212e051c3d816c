package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobswipe_server/models"
	"jobswipe_server/services"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPresigner struct {
	mock.Mock
}

func (m *mockPresigner) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*v4.PresignedHTTPRequest), args.Error(1)
}

func (m *mockPresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*v4.PresignedHTTPRequest), args.Error(1)
}

func newResumeService(p services.Presigner) *services.ResumeService {
	return &services.ResumeService{
		Presigner: p,
		Bucket:    "resumes-bucket",
		TTL:       5 * time.Minute,
		Now:       func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) },
	}
}

func TestResumeUploadURL(t *testing.T) {
	ctx := context.Background()

	t.Run("key is scoped to the user", func(t *testing.T) {
		p := new(mockPresigner)
		p.On("PresignPutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return *in.Bucket == "resumes-bucket" &&
				*in.Key == "resumes/u1/20240501093000-my_cv.pdf" &&
				*in.ContentType == "application/pdf"
		})).Return(&v4.PresignedHTTPRequest{URL: "https://upload"}, nil).Once()

		url, key, err := newResumeService(p).UploadURL(ctx, "u1", "../../my cv.pdf", "application/pdf")
		require.NoError(t, err)
		assert.Equal(t, "https://upload", url)
		assert.Equal(t, "resumes/u1/20240501093000-my_cv.pdf", key)
		assert.True(t, services.OwnsKey("u1", key))
		assert.False(t, services.OwnsKey("u2", key))
		p.AssertExpectations(t)
	})

	t.Run("file name is required", func(t *testing.T) {
		_, _, err := newResumeService(new(mockPresigner)).UploadURL(ctx, "u1", "  ", "")
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("signing error", func(t *testing.T) {
		p := new(mockPresigner)
		p.On("PresignPutObject", mock.Anything, mock.Anything).Return(nil, errors.New("expired credentials"))
		_, _, err := newResumeService(p).UploadURL(ctx, "u1", "cv.pdf", "")
		assert.Error(t, err)
	})
}

func TestResumeReadURL(t *testing.T) {
	p := new(mockPresigner)
	p.On("PresignGetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Key == "resumes/u1/cv.pdf"
	})).Return(&v4.PresignedHTTPRequest{URL: "https://download"}, nil)

	url, err := newResumeService(p).ReadURL(context.Background(), "resumes/u1/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://download", url)
}
