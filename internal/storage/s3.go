package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Uploader is the bucket-backed alternative to Cloudinary. Objects
// use the same dated folder scheme and are served from the bucket's
// public URL.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
	now    func() time.Time
}

func NewS3(bucket, region, accessKey, secretKey string) *S3Uploader {
	client := s3.New(s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	})
	return &S3Uploader{
		client: client,
		bucket: bucket,
		region: region,
		now:    time.Now,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, data []byte, filename, baseFolder string) (string, error) {
	ext := path.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("%s/%s%s", Folder(baseFolder, u.now()), uuid.NewString(), ext)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
