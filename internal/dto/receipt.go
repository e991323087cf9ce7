package dto

// ReceiptUploadResponse reports the outcome of one receipt upload. Success
// false with ErrorMessage set is a normal outcome (unsupported file type,
// nothing extractable), not a server error.
type ReceiptUploadResponse struct {
	Success            bool                  `json:"success"`
	Message            string                `json:"message,omitempty"`
	ErrorMessage       string                `json:"error_message,omitempty"`
	ParsedTransactions []TransactionResponse `json:"parsed_transactions,omitempty"`
	OriginalFilename   string                `json:"original_filename,omitempty"`
	FileType           string                `json:"file_type,omitempty"`
}
