// Package session guarda em memória os arquivos enviados para consolidação.
package session

import (
	"errors"
	"sync"
	"time"

	"pix-service/internal/domain"

	"github.com/google/uuid"
)

// ErrNotFound indica que o arquivo pedido não está na sessão.
var ErrNotFound = errors.New("arquivo não encontrado na consolidação")

// Entry é um arquivo armazenado na sessão.
type Entry struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Tamanho   int       `json:"tamanho"`
	TamanhoKB float64   `json:"tamanho_kb"`
	EnviadoEm time.Time `json:"enviado_em"`
	conteudo  []byte
}

type key struct {
	nome    string
	tamanho int
}

// Store mantém a lista de arquivos da consolidação. Um arquivo com o mesmo
// nome e tamanho de outro já presente não é adicionado de novo.
type Store struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// NewStore cria uma sessão vazia.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add inclui o arquivo e informa se ele foi de fato adicionado.
func (s *Store) Add(nome string, conteudo []byte) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{nome: nome, tamanho: len(conteudo)}
	for _, e := range s.entries {
		if (key{nome: e.Nome, tamanho: e.Tamanho}) == k {
			return e, false
		}
	}

	e := Entry{
		ID:        uuid.NewString(),
		Nome:      nome,
		Tamanho:   len(conteudo),
		TamanhoKB: float64(len(conteudo)) / 1024,
		EnviadoEm: s.now(),
		conteudo:  conteudo,
	}
	s.entries = append(s.entries, e)
	return e, true
}

// AddAll inclui vários arquivos e devolve quantos eram novos.
func (s *Store) AddAll(files []domain.ArquivoExtrato) int {
	added := 0
	for _, f := range files {
		if _, ok := s.Add(f.Nome, f.Conteudo); ok {
			added++
		}
	}
	return added
}

// Remove tira um arquivo da sessão pelo ID.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Clear esvazia a sessão.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}

// Len devolve a quantidade de arquivos na sessão.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// List devolve uma cópia das entradas, na ordem de envio.
func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Files devolve os arquivos na ordem de envio, prontos para a consolidação.
func (s *Store) Files() []domain.ArquivoExtrato {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ArquivoExtrato, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, domain.ArquivoExtrato{Nome: e.Nome, Conteudo: e.conteudo})
	}
	return out
}
