package form

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ntereshin/eventform-gateway/internal/models"
)

// Flow различает создание новой заявки и редактирование существующей.
type Flow string

const (
	FlowCreate Flow = "create"
	FlowEdit   Flow = "edit"
)

// Mode — состояние переключателя View ⇄ Edit. Актуален только для
// edit-потока: create-сессия всегда редактируема.
type Mode string

const (
	ModeViewing Mode = "viewing"
	ModeEditing Mode = "editing"
)

var (
	// ErrNotEditing возвращается на попытку изменить поле в режиме
	// просмотра. Защита живёт на уровне состояния, а не только в
	// отключённых виджетах: программный или гоночный ввод тоже
	// не должен трогать запись вне режима редактирования.
	ErrNotEditing = errors.New("form: сессия в режиме просмотра")

	// ErrSubmitInProgress — вторая отправка поверх незавершённой.
	ErrSubmitInProgress = errors.New("form: отправка уже выполняется")
)

// Session — живая сессия формы одного пользователя: состояние полей,
// режим, слепок для отката и флаг идущей отправки.
type Session struct {
	mu sync.Mutex

	ID         uuid.UUID
	Owner      string
	Flow       Flow
	ProposalID string
	Mode       Mode
	State      *State

	// Слепок снимается при гидрации и не меняется до отмены или
	// успешной отправки.
	snapshot models.ProposalDraft

	submitting  bool
	lastTouched time.Time
}

// NewCreateSession открывает сессию создания с пустым черновиком.
func NewCreateSession(owner string) *Session {
	return &Session{
		ID:          uuid.New(),
		Owner:       owner,
		Flow:        FlowCreate,
		Mode:        ModeEditing,
		State:       NewState(),
		lastTouched: time.Now(),
	}
}

// NewEditSession открывает сессию редактирования: гидрирует черновик из
// записи, снимает слепок и стартует в режиме просмотра.
func NewEditSession(owner string, rec *models.ProposalRecord) *Session {
	state := NewState()
	state.Hydrate(rec)

	return &Session{
		ID:          uuid.New(),
		Owner:       owner,
		Flow:        FlowEdit,
		ProposalID:  rec.ID,
		Mode:        ModeViewing,
		State:       state,
		snapshot:    state.Draft,
		lastTouched: time.Now(),
	}
}

// Lock/Unlock отдают монопольный доступ к сессии на время операции.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Editable сообщает, принимает ли сессия ввод.
func (s *Session) Editable() bool {
	return s.Flow == FlowCreate || s.Mode == ModeEditing
}

// SetField — переход "ввод в строковое поле". В режиме просмотра ввод
// не изменяет состояние.
func (s *Session) SetField(name, value string) error {
	if !s.Editable() {
		return ErrNotEditing
	}
	return s.State.SetField(name, value)
}

// SetCheckbox — переход "переключение чекбокса".
func (s *Session) SetCheckbox(name string, checked bool) error {
	if !s.Editable() {
		return ErrNotEditing
	}
	return s.State.SetCheckbox(name, checked)
}

// StartEdit переводит edit-сессию из просмотра в редактирование.
// Слепок не снимается заново: он сделан при гидрации.
func (s *Session) StartEdit() {
	if s.Flow == FlowEdit {
		s.Mode = ModeEditing
	}
}

// CancelEdit откатывает черновик к слепку, очищает ошибки и статус и
// возвращает режим просмотра. Подтверждение отмены — забота слоя
// отображения: сюда попадают только подтверждённые отмены.
func (s *Session) CancelEdit() {
	if s.Flow != FlowEdit {
		return
	}
	s.State.Draft = s.snapshot
	s.State.Errors = make(map[string]string)
	s.State.Status = StatusIdle
	s.State.Message = ""
	s.Mode = ModeViewing
}

// Snapshot возвращает копию слепка.
func (s *Session) Snapshot() models.ProposalDraft {
	return s.snapshot
}

// BeginSubmit включает флаг идущей отправки — аналог заблокированной
// кнопки submit: вторая отправка того же черновика не стартует.
func (s *Session) BeginSubmit() error {
	if s.submitting {
		return ErrSubmitInProgress
	}
	s.submitting = true
	return nil
}

// EndSubmit снимает флаг отправки.
func (s *Session) EndSubmit() {
	s.submitting = false
}

// CompleteSubmit фиксирует успешную отправку: create-сессия сбрасывает
// форму, edit-сессия обновляет слепок отправленными значениями и
// возвращается в режим просмотра.
func (s *Session) CompleteSubmit() {
	if s.Flow == FlowCreate {
		s.State.Reset()
		return
	}
	s.snapshot = s.State.Draft
	s.Mode = ModeViewing
}

// Touch отмечает активность для вытеснения простаивающих сессий.
// Метка защищена мьютексом сессии: Touch зовётся из Get реестра без
// внешней блокировки, параллельно с циклом очистки.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastTouched = time.Now()
	s.mu.Unlock()
}

// LastTouched возвращает момент последней активности.
func (s *Session) LastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}
