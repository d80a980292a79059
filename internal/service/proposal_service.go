package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ntereshin/eventform-gateway/internal/form"
	"github.com/ntereshin/eventform-gateway/internal/identity"
	"github.com/ntereshin/eventform-gateway/internal/logger"
	"github.com/ntereshin/eventform-gateway/internal/models"
	"github.com/ntereshin/eventform-gateway/internal/pkg/apperror"
	"github.com/ntereshin/eventform-gateway/internal/validation"
)

// Сообщения статусной строки формы.
const (
	msgValidationFailed = "Please fill in all the required fields correctly."
	msgCreateSuccess    = "Proposal submitted successfully!"
	msgUpdateSuccess    = "Proposal updated successfully!"
	msgNoPermission     = "You do not have permission to edit this proposal"
	msgViewMode         = "Proposal is in view mode. Switch to edit mode to make changes."
	msgSubmitInFlight   = "Submission already in progress"
)

// ProposalAPI — контракт backend API заявок.
type ProposalAPI interface {
	Create(ctx context.Context, token string, payload *models.ProposalPayload) (*models.ProposalRecord, error)
	Get(ctx context.Context, token, id string) (*models.ProposalRecord, error)
	Update(ctx context.Context, token, id string, payload *models.ProposalPayload) (*models.ProposalRecord, error)
	Delete(ctx context.Context, token, id string) error
	ListMine(ctx context.Context, token string) ([]models.ProposalRecord, error)
}

// IdentityProvider — контракт провайдера идентичности.
type IdentityProvider interface {
	GetUser(ctx context.Context, accessToken string) (*identity.User, error)
	SignOut(ctx context.Context, accessToken string) error
}

// ProposalService — координатор: соединяет сессии формы, движок
// валидации и внешние API. Зависимости передаются явно, поэтому
// сервис тестируется без сети и без провайдера идентичности.
type ProposalService struct {
	sessions *SessionStore
	api      ProposalAPI
	idp      IdentityProvider
	log      *logrus.Entry
}

// NewProposalService создаёт координатор.
func NewProposalService(sessions *SessionStore, api ProposalAPI, idp IdentityProvider) *ProposalService {
	return &ProposalService{
		sessions: sessions,
		api:      api,
		idp:      idp,
		log:      logger.WithComponent("proposal_service"),
	}
}

// OpenCreate открывает сессию создания с пустым черновиком.
func (s *ProposalService) OpenCreate(owner string) *form.Session {
	sess := form.NewCreateSession(owner)
	s.sessions.Put(sess)
	return sess
}

// OpenEdit загружает запись с backend, проверяет владельца и открывает
// сессию редактирования в режиме просмотра.
func (s *ProposalService) OpenEdit(ctx context.Context, token, owner, proposalID string) (*form.Session, error) {
	rec, err := s.api.Get(ctx, token, proposalID)
	if err != nil {
		return nil, err
	}

	if rec.SubmittedBy != owner {
		return nil, apperror.New(apperror.ErrCodePermissionDenied, msgNoPermission)
	}

	sess := form.NewEditSession(owner, rec)
	s.sessions.Put(sess)
	return sess, nil
}

// GetSession возвращает сессию владельца.
func (s *ProposalService) GetSession(id uuid.UUID, owner string) (*form.Session, error) {
	return s.sessions.Get(id, owner)
}

// UpdateField — переход "пользовательский ввод": строковое значение
// либо чекбокс, с оптимистичной очисткой ошибки поля.
func (s *ProposalService) UpdateField(id uuid.UUID, owner, name string, value *string, checked *bool) (*form.Session, error) {
	sess, err := s.sessions.Get(id, owner)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	switch {
	case checked != nil:
		err = sess.SetCheckbox(name, *checked)
	case value != nil:
		err = sess.SetField(name, *value)
	default:
		return nil, apperror.New(apperror.ErrCodeBadRequest, "Either value or checked must be provided")
	}

	if errors.Is(err, form.ErrNotEditing) {
		return nil, apperror.New(apperror.ErrCodeConflict, msgViewMode)
	}
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeBadRequest, "Unknown form field: "+name)
	}

	return sess, nil
}

// StartEdit переводит edit-сессию в режим редактирования.
func (s *ProposalService) StartEdit(id uuid.UUID, owner string) (*form.Session, error) {
	sess, err := s.sessions.Get(id, owner)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	sess.StartEdit()
	return sess, nil
}

// CancelEdit откатывает черновик к слепку гидрации. Сюда попадают
// только подтверждённые пользователем отмены.
func (s *ProposalService) CancelEdit(id uuid.UUID, owner string) (*form.Session, error) {
	sess, err := s.sessions.Get(id, owner)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	sess.CancelEdit()
	return sess, nil
}

// Discard закрывает сессию: пользователь ушёл со страницы.
func (s *ProposalService) Discard(id uuid.UUID, owner string) error {
	if _, err := s.sessions.Get(id, owner); err != nil {
		return err
	}
	s.sessions.Delete(id)
	return nil
}

// Submit выполняет полный цикл отправки: валидация → приведение типов
// → сетевой вызов → интерпретация результата. Ошибка валидации не
// доходит до сети. Повторных попыток нет — неудачная отправка требует
// нового действия пользователя.
func (s *ProposalService) Submit(ctx context.Context, token string, id uuid.UUID, owner string) (*form.Session, error) {
	sess, err := s.sessions.Get(id, owner)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	if !sess.Editable() {
		return nil, apperror.New(apperror.ErrCodeConflict, msgViewMode)
	}

	if err := sess.BeginSubmit(); err != nil {
		return nil, apperror.New(apperror.ErrCodeConflict, msgSubmitInFlight)
	}
	defer sess.EndSubmit()

	errs := validation.Validate(&sess.State.Draft)
	if len(errs) > 0 {
		return s.failValidation(sess, errs)
	}

	payload, coerceErrs := buildPayload(&sess.State.Draft)
	if len(coerceErrs) > 0 {
		return s.failValidation(sess, coerceErrs)
	}

	sess.State.Errors = make(validation.ErrorMap)

	var submitErr error
	if sess.Flow == form.FlowCreate {
		_, submitErr = s.api.Create(ctx, token, payload)
	} else {
		_, submitErr = s.api.Update(ctx, token, sess.ProposalID, payload)
	}

	if submitErr != nil {
		s.failSubmit(ctx, sess, token, submitErr)
		return sess, submitErr
	}

	sess.CompleteSubmit()
	sess.State.Status = form.StatusSuccess
	if sess.Flow == form.FlowCreate {
		sess.State.Message = msgCreateSuccess
	} else {
		sess.State.Message = msgUpdateSuccess
	}

	return sess, nil
}

// failValidation фиксирует ошибку валидации в состоянии формы.
func (s *ProposalService) failValidation(sess *form.Session, errs validation.ErrorMap) (*form.Session, error) {
	s.log.WithField("fields", mapKeys(errs)).Debug("черновик не прошёл валидацию")

	sess.State.Errors = errs
	sess.State.Status = form.StatusError
	sess.State.Message = msgValidationFailed
	return sess, apperror.NewValidation(msgValidationFailed, errs)
}

// failSubmit фиксирует отказ отправки. Истёкшая сессия дополнительно
// вызывает полный выход у провайдера, чтобы браузер не переиспользовал
// мёртвые refresh токены.
func (s *ProposalService) failSubmit(ctx context.Context, sess *form.Session, token string, err error) {
	message := "Failed to submit proposal"
	if appErr, ok := apperror.As(err); ok {
		message = appErr.Message
	}

	if apperror.IsAuthExpired(err) && s.idp != nil {
		if signOutErr := s.idp.SignOut(ctx, token); signOutErr != nil {
			s.log.WithError(signOutErr).Warn("не удалось выполнить полный выход")
		}
	}

	sess.State.Status = form.StatusError
	sess.State.Message = message
}

// ListMine возвращает заявки текущего пользователя. Листинг независим
// от сессий формы.
func (s *ProposalService) ListMine(ctx context.Context, token string) ([]models.ProposalRecord, error) {
	return s.api.ListMine(ctx, token)
}

// GetProposal загружает одну заявку с проверкой владельца.
func (s *ProposalService) GetProposal(ctx context.Context, token, owner, id string) (*models.ProposalRecord, error) {
	rec, err := s.api.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}

	if rec.SubmittedBy != owner {
		return nil, apperror.New(apperror.ErrCodePermissionDenied, msgNoPermission)
	}

	return rec, nil
}

// DeleteProposal удаляет заявку по id.
func (s *ProposalService) DeleteProposal(ctx context.Context, token, id string) error {
	return s.api.Delete(ctx, token, id)
}

func mapKeys(m validation.ErrorMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
