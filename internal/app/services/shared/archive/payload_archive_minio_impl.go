package archive

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type payloadArchiveMinio struct {
	MinioClient *minio.Client
	BucketName  string
}

var (
	payloadArchiveInstance contracts.PayloadArchiveRepository
	oncePayloadArchive     sync.Once
)

func NewPayloadArchiveMinio(minioClient *minio.Client, bucketName string) contracts.PayloadArchiveRepository {
	oncePayloadArchive.Do(func() {
		instance := &payloadArchiveMinio{
			MinioClient: minioClient,
			BucketName:  bucketName,
		}
		payloadArchiveInstance = instance
	})
	return payloadArchiveInstance
}

// ArchiveWebhookPayload stores the raw event body keyed by delivery date and
// event id so disputed payments can be replayed against the original payload.
func (m *payloadArchiveMinio) ArchiveWebhookPayload(ctx context.Context, eventID string, payload []byte) error {
	objectName := fmt.Sprintf(constvars.StripeWebhookArchiveObjectFormat, time.Now().Format("2006-01-02"), eventID)

	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return nil
}
