package storage

import "context"

// KV é a porta de persistência chave-valor usada pelo store de registros.
// Chave ausente resolve para string vazia, nunca para erro: o chamador trata
// vazio como coleção vazia.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}
