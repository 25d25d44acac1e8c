package errors

import (
	"strings"
	"testing"
)

func TestValidateDocumentID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "Simple", id: "train-0001", wantErr: false},
		{name: "WithPathSeparator", id: "ud/en_ewt/train.conllu", wantErr: false},
		{name: "Empty", id: "", wantErr: true},
		{name: "Traversal", id: "../etc/passwd", wantErr: true},
		{name: "DoubleSlash", id: "a//b", wantErr: true},
		{name: "Backslash", id: "a\\b", wantErr: true},
		{name: "NullByte", id: "a\x00b", wantErr: true},
		{name: "ControlChar", id: "a\nb", wantErr: true},
		{name: "TooLong", id: strings.Repeat("x", 257), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocumentID(%q) = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDocumentID) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidDocumentID)
			}
		})
	}
}
