package valueobjects

import "fmt"

// MaxAttachments caps the attachment list. The cap holds both for the
// pre-submission conversation and for the ticket afterwards, since a ticket
// may receive more attachments post-creation.
const MaxAttachments = 3

// Attachment is an immutable reference to a file already stored by Telegram.
// The bot never downloads the payload; it keeps the file identifiers plus
// enough metadata for technicians to preview what was sent.
type Attachment struct {
	fileID       string
	fileUniqueID string
	fileName     string
	mimeType     string
	fileSize     int64
}

func NewAttachment(fileID, fileUniqueID, fileName, mimeType string, fileSize int64) (Attachment, error) {
	if fileID == "" {
		return Attachment{}, fmt.Errorf("attachment file ID is required")
	}
	if fileUniqueID == "" {
		return Attachment{}, fmt.Errorf("attachment unique file ID is required")
	}
	if fileSize < 0 {
		return Attachment{}, fmt.Errorf("attachment size cannot be negative")
	}

	return Attachment{
		fileID:       fileID,
		fileUniqueID: fileUniqueID,
		fileName:     fileName,
		mimeType:     mimeType,
		fileSize:     fileSize,
	}, nil
}

func (a Attachment) FileID() string {
	return a.fileID
}

func (a Attachment) FileUniqueID() string {
	return a.fileUniqueID
}

func (a Attachment) FileName() string {
	return a.fileName
}

func (a Attachment) MimeType() string {
	return a.mimeType
}

func (a Attachment) FileSize() int64 {
	return a.fileSize
}

// Equals compares attachments by value. Telegram's unique file ID is stable
// across re-sends of the same file, so it anchors the comparison.
func (a Attachment) Equals(other Attachment) bool {
	return a.fileUniqueID == other.fileUniqueID
}
