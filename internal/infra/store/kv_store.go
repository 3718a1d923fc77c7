package store

import (
	"context"
	"encoding/json"

	domain "github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/models"
	"github.com/libertaapp/atendimentos-api/internal/storage"
)

const keyPrefix = "userdata:"

// userData é o documento persistido por usuária. Os nomes dos campos seguem o
// formato de armazenamento original ("atendimentos" / "tarotAnalyses").
type userData struct {
	Atendimentos  []models.Atendimento        `json:"atendimentos"`
	TarotAnalyses []models.AnaliseFrequencial `json:"tarotAnalyses"`
}

// KVStore implementa registro.Store sobre uma porta chave-valor.
// Cada save serializa o documento inteiro da usuária; cada get desserializa.
type KVStore struct {
	kv storage.KV
}

func NewKVStore(kv storage.KV) *KVStore {
	return &KVStore{kv: kv}
}

// --------------------------------------------------
// Documento por usuária
// --------------------------------------------------

func (s *KVStore) load(ctx context.Context, userID string) (userData, error) {
	raw, err := s.kv.Get(ctx, keyPrefix+userID)
	if err != nil {
		return userData{}, err
	}

	var data userData
	if raw != "" {
		// dado ilegível vira coleção vazia, nunca erro
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return userData{}, nil
		}
	}
	return data, nil
}

func (s *KVStore) save(ctx context.Context, userID string, data userData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, keyPrefix+userID, string(raw))
}

// --------------------------------------------------
// Atendimentos
// --------------------------------------------------

func (s *KVStore) ListAtendimentos(
	ctx context.Context,
	userID string,
) ([]models.Atendimento, error) {

	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data.Atendimentos == nil {
		return []models.Atendimento{}, nil
	}
	return data.Atendimentos, nil
}

func (s *KVStore) SaveAtendimentos(
	ctx context.Context,
	userID string,
	atendimentos []models.Atendimento,
) error {

	data, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	data.Atendimentos = atendimentos
	return s.save(ctx, userID, data)
}

func (s *KVStore) UpsertAtendimento(
	ctx context.Context,
	userID string,
	atendimento models.Atendimento,
) error {

	data, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	replaced := false
	for i, at := range data.Atendimentos {
		if at.ID == atendimento.ID {
			data.Atendimentos[i] = atendimento
			replaced = true
			break
		}
	}
	if !replaced {
		data.Atendimentos = append(data.Atendimentos, atendimento)
	}

	return s.save(ctx, userID, data)
}

func (s *KVStore) DeleteAtendimento(
	ctx context.Context,
	userID string,
	id string,
) (bool, error) {

	data, err := s.load(ctx, userID)
	if err != nil {
		return false, err
	}

	kept := make([]models.Atendimento, 0, len(data.Atendimentos))
	removed := false
	for _, at := range data.Atendimentos {
		if at.ID == id {
			removed = true
			continue
		}
		kept = append(kept, at)
	}

	if !removed {
		return false, nil
	}

	data.Atendimentos = kept
	return true, s.save(ctx, userID, data)
}

// --------------------------------------------------
// Análises frequenciais
// --------------------------------------------------

func (s *KVStore) ListAnalises(
	ctx context.Context,
	userID string,
) ([]models.AnaliseFrequencial, error) {

	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data.TarotAnalyses == nil {
		return []models.AnaliseFrequencial{}, nil
	}
	return data.TarotAnalyses, nil
}

func (s *KVStore) SaveAnalises(
	ctx context.Context,
	userID string,
	analises []models.AnaliseFrequencial,
) error {

	data, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	data.TarotAnalyses = analises
	return s.save(ctx, userID, data)
}

func (s *KVStore) UpsertAnalise(
	ctx context.Context,
	userID string,
	analise models.AnaliseFrequencial,
) error {

	data, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	replaced := false
	for i, a := range data.TarotAnalyses {
		if a.ID == analise.ID {
			data.TarotAnalyses[i] = analise
			replaced = true
			break
		}
	}
	if !replaced {
		data.TarotAnalyses = append(data.TarotAnalyses, analise)
	}

	return s.save(ctx, userID, data)
}

func (s *KVStore) DeleteAnalise(
	ctx context.Context,
	userID string,
	id string,
) (bool, error) {

	data, err := s.load(ctx, userID)
	if err != nil {
		return false, err
	}

	kept := make([]models.AnaliseFrequencial, 0, len(data.TarotAnalyses))
	removed := false
	for _, a := range data.TarotAnalyses {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}

	if !removed {
		return false, nil
	}

	data.TarotAnalyses = kept
	return true, s.save(ctx, userID, data)
}

// --------------------------------------------------
// Visão geral do consultório
// --------------------------------------------------

func (s *KVStore) ListAllAnalises(
	ctx context.Context,
) ([]models.AnaliseFrequencial, error) {

	keys, err := s.kv.Keys(ctx, keyPrefix)
	if err != nil {
		return nil, err
	}

	all := []models.AnaliseFrequencial{}
	for _, key := range keys {
		raw, err := s.kv.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			continue
		}

		var data userData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			continue
		}
		all = append(all, data.TarotAnalyses...)
	}

	return all, nil
}

// Compile-time check
var _ domain.Store = (*KVStore)(nil)
