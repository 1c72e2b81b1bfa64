package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/fiapp/internal/application/ports"
	appconfig "github.com/jhoicas/fiapp/pkg/config"
)

var _ ports.ImageStorage = (*S3Storage)(nil)

const prefijoS3 = "productos/"

// S3Storage guarda imágenes en un bucket S3 compatible (AWS, MinIO, R2...).
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Storage construye el cliente desde la configuración.
// Con Endpoint vacío se usa AWS; AccessKey vacío delega en la cadena de credenciales por defecto.
func NewS3Storage(ctx context.Context, cfg appconfig.S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket requerido")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: configuración AWS: %w", err)
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	switch {
	case publicURL != "":
	case endpoint != "":
		publicURL = endpoint + "/" + cfg.Bucket
	default:
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}

	return &S3Storage{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

// Guardar sube el objeto bajo productos/{nombre} y devuelve su URL pública.
func (s *S3Storage) Guardar(ctx context.Context, nombre, contentType string, data []byte) (string, error) {
	if err := validarNombre(nombre); err != nil {
		return "", err
	}
	key := prefijoS3 + nombre
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, in); err != nil {
		return "", fmt.Errorf("storage: subir %s: %w", key, err)
	}
	return s.publicURL + "/" + key, nil
}

// PublicURL base pública bajo la que quedan las imágenes.
func (s *S3Storage) PublicURL() string { return s.publicURL }
