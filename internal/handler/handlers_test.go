package handler

import (
	"testing"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{
			name:     "http and grpc",
			cfg:      config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"},
			wantHTTP: true,
			wantGRPC: true,
		},
		{
			name:     "http only",
			cfg:      config.Server{HTTPAddress: ":8080"},
			wantHTTP: true,
		},
		{
			name:     "grpc only",
			cfg:      config.Server{GRPCAddress: ":9090"},
			wantGRPC: true,
		},
		{
			name:    "no transport",
			cfg:     config.Server{},
			wantErr: errNoHandlersAreCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// handlers only keep the services pointer at construction time
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
