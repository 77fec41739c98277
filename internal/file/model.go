package file

import "time"

// File is the metadata record of an uploaded binary. The binary itself
// lives on the media host; the document store keeps only the pointer.
type File struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"storeId"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	MIMEType   string    `json:"mimeType"`
	Size       int64     `json:"size"`
	ObjectKey  string    `json:"-"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type FileResponse struct {
	File File `json:"file"`
}

type FilesResponse struct {
	Files []File `json:"files"`
}
