package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader hosts images referenced from the food catalog and flyers.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(ctx context.Context) (*S3Uploader, error) {
	region := os.Getenv("AWS_REGION")
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: os.Getenv("S3_BUCKET"),
		region: region,
	}, nil
}

// UploadBase64Image stores a base64 payload (with or without a data URI
// prefix) under keyPrefix and returns the public URL.
func (u *S3Uploader) UploadBase64Image(data, keyPrefix string) (string, error) {
	if idx := strings.Index(data, ","); strings.HasPrefix(data, "data:") && idx != -1 {
		data = data[idx+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("invalid base64 image: %w", err)
	}

	contentType := http.DetectContentType(decoded)
	ext := "jpg"
	if strings.HasSuffix(contentType, "png") {
		ext = "png"
	}

	key := fmt.Sprintf("%s/%d.%s", keyPrefix, time.Now().UnixNano(), ext)
	_, err = u.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(decoded),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
