package db

import (
	"testing"
	"time"
)

func TestPoolOptionsDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   PoolOptions
		want PoolOptions
	}{
		{
			"zero value gets defaults",
			PoolOptions{},
			PoolOptions{MaxConns: 10, MinConns: 2, MaxRetries: 5, RetryInterval: 2 * time.Second},
		},
		{
			"explicit values pass through",
			PoolOptions{MaxConns: 30, MinConns: 5, MaxRetries: 3, RetryInterval: time.Second},
			PoolOptions{MaxConns: 30, MinConns: 5, MaxRetries: 3, RetryInterval: time.Second},
		},
		{
			"min clamped to max",
			PoolOptions{MaxConns: 4, MinConns: 8},
			PoolOptions{MaxConns: 4, MinConns: 4, MaxRetries: 5, RetryInterval: 2 * time.Second},
		},
		{
			"negative values get defaults",
			PoolOptions{MaxConns: -1, MinConns: -1, MaxRetries: -1, RetryInterval: -time.Second},
			PoolOptions{MaxConns: 10, MinConns: 2, MaxRetries: 5, RetryInterval: 2 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.withDefaults(); got != tt.want {
				t.Errorf("withDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
