package store

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"autotube/common"
	"autotube/types"
)

const archiveTimeout = 30 * time.Second

// Archiver mirrors appended video records into an S3 bucket as JSON, so a
// restart of the in-memory store does not lose the generation history.
// Archival is best effort: failures are logged, never surfaced to callers.
type Archiver struct {
	s3     *common.S3
	bucket string
	prefix string
}

// NewArchiverFromEnv returns an archiver if S3_BUCKET is set.
// Optional: S3_REGION, S3_PROFILE, S3_PREFIX, S3_USE_PATH_STYLE=true.
func NewArchiverFromEnv(ctx context.Context) *Archiver {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil
	}

	cfg := common.S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}
	client, err := common.NewS3(ctx, cfg)
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (archival disabled)", err)
		return nil
	}

	prefix := strings.TrimSpace(os.Getenv("S3_PREFIX"))
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return &Archiver{s3: client, bucket: bucket, prefix: prefix}
}

// ArchiveVideo writes the record to s3://bucket/<prefix>videos/<id>.json.
func (a *Archiver) ArchiveVideo(video types.VideoRecord) {
	if a == nil {
		return
	}

	b, err := json.MarshalIndent(video, "", "  ")
	if err != nil {
		log.Printf("S3 archive: failed to marshal video %s: %v", video.ID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	key := a.prefix + "videos/" + video.ID + ".json"
	if err := a.s3.Put(ctx, a.bucket, key, bytes.NewReader(b), "application/json"); err != nil {
		log.Printf("S3 archive: upload failed for %s: %v", video.ID, err)
		return
	}
}
