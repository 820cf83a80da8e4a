package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
)

// attachmentRecord is the JSON shape attachments take inside their column.
type attachmentRecord struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileName     string `json:"file_name"`
	MimeType     string `json:"mime_type"`
	FileSize     int64  `json:"file_size"`
}

func attachmentsToJSON(attachments []vo.Attachment) (string, error) {
	if len(attachments) == 0 {
		return "", nil
	}

	records := make([]attachmentRecord, 0, len(attachments))
	for _, att := range attachments {
		records = append(records, attachmentRecord{
			FileID:       att.FileID(),
			FileUniqueID: att.FileUniqueID(),
			FileName:     att.FileName(),
			MimeType:     att.MimeType(),
			FileSize:     att.FileSize(),
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to marshal attachments: %w", err)
	}
	return string(data), nil
}

func attachmentsFromJSON(raw string) ([]vo.Attachment, error) {
	if raw == "" {
		return nil, nil
	}

	var records []attachmentRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attachments: %w", err)
	}

	attachments := make([]vo.Attachment, 0, len(records))
	for _, rec := range records {
		att, err := vo.NewAttachment(rec.FileID, rec.FileUniqueID, rec.FileName, rec.MimeType, rec.FileSize)
		if err != nil {
			return nil, fmt.Errorf("invalid stored attachment %s: %w", rec.FileUniqueID, err)
		}
		attachments = append(attachments, att)
	}
	return attachments, nil
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func millisToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := millisToTime(*ms)
	return &t
}

func timeToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
