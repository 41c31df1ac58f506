package store_test

import (
	"context"
	"testing"

	"moviecatalog/pkg/config"
	"moviecatalog/store"

	"github.com/stretchr/testify/assert"
)

func TestOpen_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func() *config.Config
		wantErr string
	}{
		{
			name: "unsupported driver",
			cfg: func() *config.Config {
				return &config.Config{StoreDriver: "redis"}
			},
			wantErr: `store: unsupported driver "redis"`,
		},
		{
			name: "mongodb without uri",
			cfg: func() *config.Config {
				return &config.Config{StoreDriver: config.DriverMongoDB}
			},
			wantErr: "mongodb: uri is required",
		},
		{
			name: "dynamodb without region",
			cfg: func() *config.Config {
				return &config.Config{StoreDriver: config.DriverDynamoDB}
			},
			wantErr: "dynamodb: region is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := store.Open(context.Background(), tt.cfg())

			assert.Nil(t, s)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestStore_ZeroValue(t *testing.T) {
	s := &store.Store{}

	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, s.Close(context.Background()))
}
