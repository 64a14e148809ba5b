// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"bytes"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
)

type S3Filesystem struct {
	svc    *s3.S3
	bucket string
}

func NewS3Filesystem(session *session.Session, bucket string) (*S3Filesystem, error) {
	if bucket == "" {
		return nil, errors.New("empty snapshot bucket")
	}
	return &S3Filesystem{svc: s3.New(session), bucket: bucket}, nil
}

func (s3fs *S3Filesystem) UploadSnapshot(key string, data []byte) error {
	req, _ := s3fs.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(s3fs.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	return errors.Wrapf(req.Send(), "uploading snapshot %s", key)
}
