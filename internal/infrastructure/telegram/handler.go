package telegram

import (
	"context"
	"strings"

	supportUC "github.com/oncabito/sentinela/internal/application/support/usecases"
	ticketUC "github.com/oncabito/sentinela/internal/application/ticket/usecases"
	"github.com/oncabito/sentinela/internal/domain/conversation"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/errors"
	"github.com/oncabito/sentinela/internal/shared/logger"
)

// SupportUseCases bundles the conversation use cases the bot handler drives.
type SupportUseCases struct {
	StartConversation     *supportUC.StartConversationUseCase
	SelectCategory        *supportUC.SelectCategoryUseCase
	SelectGame            *supportUC.SelectGameUseCase
	SelectTiming          *supportUC.SelectTimingUseCase
	SetDescription        *supportUC.SetDescriptionUseCase
	AddAttachment         *supportUC.AddAttachmentUseCase
	ProceedToConfirmation *supportUC.ProceedToConfirmationUseCase
	ConfirmTicket         *supportUC.ConfirmTicketUseCase
	CancelConversation    *supportUC.CancelConversationUseCase
	GetActiveConversation *supportUC.GetActiveConversationUseCase
	ListTickets           *ticketUC.ListTicketsUseCase
}

// BotHandler routes Telegram updates into the support form use cases. All
// conversation state lives in the database; the handler itself is stateless,
// so any worker can process any update for the same user.
type BotHandler struct {
	botService *BotService
	useCases   SupportUseCases
	logger     logger.Interface
}

func NewBotHandler(botService *BotService, useCases SupportUseCases, logger logger.Interface) *BotHandler {
	return &BotHandler{
		botService: botService,
		useCases:   useCases,
		logger:     logger,
	}
}

// HandleUpdate dispatches a single Telegram update.
func (h *BotHandler) HandleUpdate(ctx context.Context, update *Update) error {
	switch {
	case update.CallbackQuery != nil:
		return h.handleCallbackQuery(ctx, update.CallbackQuery)
	case update.Message != nil:
		return h.handleMessage(ctx, update.Message)
	default:
		return nil
	}
}

func (h *BotHandler) handleMessage(ctx context.Context, msg *Message) error {
	if msg.From == nil || msg.From.IsBot || msg.Chat == nil {
		return nil
	}
	// The support form only runs in direct messages. Group chatter is ignored.
	if msg.Chat.Type != "private" {
		return nil
	}

	userID := msg.From.ID
	chatID := msg.Chat.ID

	if strings.HasPrefix(msg.Text, "/") {
		return h.handleCommand(ctx, chatID, userID, msg)
	}

	if len(msg.Photo) > 0 || msg.Document != nil {
		return h.handleAttachmentUpload(ctx, chatID, userID, msg)
	}

	if strings.TrimSpace(msg.Text) != "" {
		return h.handleText(ctx, chatID, userID, msg.Text)
	}

	return nil
}

func (h *BotHandler) handleCommand(ctx context.Context, chatID, userID int64, msg *Message) error {
	command := strings.ToLower(strings.Fields(msg.Text)[0])
	// Strip the "@botname" suffix Telegram appends in some clients
	if at := strings.Index(command, "@"); at > 0 {
		command = command[:at]
	}

	switch command {
	case "/start":
		return h.botService.SendMessage(chatID, welcomeMessage(msg.From.FirstName))
	case "/suporte":
		return h.startConversation(ctx, chatID, userID)
	case "/status":
		return h.listTickets(ctx, chatID, userID)
	case "/cancelar":
		return h.cancelConversation(ctx, chatID, userID)
	case "/ajuda", "/help":
		return h.botService.SendMessage(chatID, helpMessage())
	default:
		return h.botService.SendMessage(chatID, "Não conheço esse comando. Use /ajuda para ver as opções.")
	}
}

func (h *BotHandler) startConversation(ctx context.Context, chatID, userID int64) error {
	_, err := h.useCases.StartConversation.Execute(ctx, supportUC.StartConversationCommand{
		TelegramUserID: userID,
	})
	if errors.IsConflictError(err) {
		// A form is already open; put the user back on its current step.
		dto, getErr := h.useCases.GetActiveConversation.Execute(ctx, supportUC.GetActiveConversationQuery{
			TelegramUserID: userID,
		})
		if getErr != nil {
			return h.replyError(chatID, getErr)
		}
		if err := h.botService.SendMessage(chatID, "Você já tem um chamado em andamento. Continuando de onde parou:"); err != nil {
			return err
		}
		return h.promptForStep(ctx, chatID, dto)
	}
	if err != nil {
		return h.replyError(chatID, err)
	}

	return h.botService.SendMessageWithInlineKeyboard(chatID, categoryPrompt(), CategoryKeyboard())
}

func (h *BotHandler) listTickets(ctx context.Context, chatID, userID int64) error {
	result, err := h.useCases.ListTickets.Execute(ctx, ticketUC.ListTicketsQuery{
		TelegramUserID: userID,
	})
	if err != nil {
		return h.replyError(chatID, err)
	}

	return h.botService.SendMessage(chatID, ticketListMessage(result.Tickets))
}

func (h *BotHandler) cancelConversation(ctx context.Context, chatID, userID int64) error {
	err := h.useCases.CancelConversation.Execute(ctx, supportUC.CancelConversationCommand{
		TelegramUserID: userID,
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return h.botService.SendMessage(chatID, conversationExpiredHint())
		}
		return h.replyError(chatID, err)
	}

	return h.botService.SendMessage(chatID, conversationCancelledMessage())
}

// handleText routes free-form text by the step the conversation is waiting
// on: the custom game name at GAME, the description at DESCRIPTION.
func (h *BotHandler) handleText(ctx context.Context, chatID, userID int64, text string) error {
	dto, err := h.useCases.GetActiveConversation.Execute(ctx, supportUC.GetActiveConversationQuery{
		TelegramUserID: userID,
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return h.botService.SendMessage(chatID, conversationExpiredHint())
		}
		return h.replyError(chatID, err)
	}

	switch conversation.Step(dto.Step) {
	case conversation.StepGame:
		result, err := h.useCases.SelectGame.Execute(ctx, supportUC.SelectGameCommand{
			TelegramUserID: userID,
			Game:           vo.GameOther.String(),
			CustomName:     text,
		})
		if err != nil {
			return h.replyError(chatID, err)
		}
		if err := h.botService.SendMessage(chatID, "Jogo: <b>"+EscapeHTML(result.Conversation.GameLabel)+"</b>"); err != nil {
			h.logger.Warnw("failed to confirm custom game", "error", err)
		}
		return h.botService.SendMessageWithInlineKeyboard(chatID, timingPrompt(), TimingKeyboard())
	case conversation.StepDescription:
		_, err := h.useCases.SetDescription.Execute(ctx, supportUC.SetDescriptionCommand{
			TelegramUserID: userID,
			Description:    text,
		})
		if err != nil {
			return h.replyError(chatID, err)
		}
		return h.botService.SendMessageWithInlineKeyboard(chatID, attachmentsPrompt(), AttachmentsKeyboard(0))
	default:
		return h.promptForStep(ctx, chatID, dto)
	}
}

func (h *BotHandler) handleAttachmentUpload(ctx context.Context, chatID, userID int64, msg *Message) error {
	cmd := supportUC.AddAttachmentCommand{
		TelegramUserID: userID,
	}
	switch {
	case msg.Document != nil:
		cmd.FileID = msg.Document.FileID
		cmd.FileUniqueID = msg.Document.FileUniqueID
		cmd.FileName = msg.Document.FileName
		cmd.MimeType = msg.Document.MimeType
		cmd.FileSize = msg.Document.FileSize
	case len(msg.Photo) > 0:
		// Telegram orders photo sizes smallest first; keep the largest
		photo := msg.Photo[len(msg.Photo)-1]
		cmd.FileID = photo.FileID
		cmd.FileUniqueID = photo.FileUniqueID
		cmd.FileName = "photo.jpg"
		cmd.MimeType = "image/jpeg"
		cmd.FileSize = photo.FileSize
	}

	result, err := h.useCases.AddAttachment.Execute(ctx, cmd)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return h.botService.SendMessage(chatID, conversationExpiredHint())
		}
		return h.replyError(chatID, err)
	}

	return h.botService.SendMessageWithInlineKeyboard(
		chatID,
		attachmentReceivedMessage(result.Remaining),
		AttachmentsKeyboard(result.Conversation.AttachmentCount),
	)
}

func (h *BotHandler) handleCallbackQuery(ctx context.Context, query *CallbackQuery) error {
	if query.From == nil {
		return nil
	}

	userID := query.From.ID
	chatID := userID
	messageID := int64(0)
	if query.Message != nil && query.Message.Chat != nil {
		chatID = query.Message.Chat.ID
		messageID = query.Message.MessageID
	}

	// Acknowledge first so the client stops the loading spinner
	if err := h.botService.AnswerCallbackQuery(query.ID, "", false); err != nil {
		h.logger.Warnw("failed to answer callback query", "error", err)
	}

	data := query.Data
	switch {
	case strings.HasPrefix(data, callbackCategoryPrefix):
		return h.onCategorySelected(ctx, chatID, messageID, userID, strings.TrimPrefix(data, callbackCategoryPrefix))
	case strings.HasPrefix(data, callbackGamePrefix):
		return h.onGameSelected(ctx, chatID, messageID, userID, strings.TrimPrefix(data, callbackGamePrefix))
	case strings.HasPrefix(data, callbackTimingPrefix):
		return h.onTimingSelected(ctx, chatID, messageID, userID, strings.TrimPrefix(data, callbackTimingPrefix))
	case data == callbackAttachDone:
		return h.onAttachmentsDone(ctx, chatID, messageID, userID)
	case data == callbackConfirmCreate:
		return h.onConfirm(ctx, chatID, messageID, userID)
	case data == callbackConfirmCancel:
		return h.onCancelFromKeyboard(ctx, chatID, messageID, userID)
	default:
		h.logger.Warnw("unknown callback data", "data", data, "user_id", userID)
		return nil
	}
}

func (h *BotHandler) onCategorySelected(ctx context.Context, chatID, messageID, userID int64, key string) error {
	result, err := h.useCases.SelectCategory.Execute(ctx, supportUC.SelectCategoryCommand{
		TelegramUserID: userID,
		Category:       key,
	})
	if err != nil {
		return h.replyCallbackError(chatID, err)
	}

	text := "Tipo do problema: <b>" + result.Conversation.CategoryLabel + "</b>"
	if err := h.botService.EditMessageText(chatID, messageID, text); err != nil {
		h.logger.Warnw("failed to edit category message", "error", err)
	}
	return h.botService.SendMessageWithInlineKeyboard(chatID, gamePrompt(), GameKeyboard())
}

func (h *BotHandler) onGameSelected(ctx context.Context, chatID, messageID, userID int64, key string) error {
	// "Other" needs a typed name before the conversation can advance
	if key == vo.GameOther.String() {
		if err := h.botService.EditMessageText(chatID, messageID, gamePrompt()); err != nil {
			h.logger.Warnw("failed to edit game message", "error", err)
		}
		return h.botService.SendMessage(chatID, customGamePrompt())
	}

	result, err := h.useCases.SelectGame.Execute(ctx, supportUC.SelectGameCommand{
		TelegramUserID: userID,
		Game:           key,
	})
	if err != nil {
		return h.replyCallbackError(chatID, err)
	}

	text := "Jogo: <b>" + EscapeHTML(result.Conversation.GameLabel) + "</b>"
	if err := h.botService.EditMessageText(chatID, messageID, text); err != nil {
		h.logger.Warnw("failed to edit game message", "error", err)
	}
	return h.botService.SendMessageWithInlineKeyboard(chatID, timingPrompt(), TimingKeyboard())
}

func (h *BotHandler) onTimingSelected(ctx context.Context, chatID, messageID, userID int64, key string) error {
	result, err := h.useCases.SelectTiming.Execute(ctx, supportUC.SelectTimingCommand{
		TelegramUserID: userID,
		Timing:         key,
	})
	if err != nil {
		return h.replyCallbackError(chatID, err)
	}

	text := "Quando começou: <b>" + result.Conversation.TimingLabel + "</b>"
	if err := h.botService.EditMessageText(chatID, messageID, text); err != nil {
		h.logger.Warnw("failed to edit timing message", "error", err)
	}
	return h.botService.SendMessage(chatID, descriptionPrompt())
}

func (h *BotHandler) onAttachmentsDone(ctx context.Context, chatID, messageID, userID int64) error {
	result, err := h.useCases.ProceedToConfirmation.Execute(ctx, supportUC.ProceedToConfirmationCommand{
		TelegramUserID: userID,
	})
	if err != nil {
		return h.replyCallbackError(chatID, err)
	}

	if err := h.botService.EditMessageText(chatID, messageID, "📎 Anexos concluídos."); err != nil {
		h.logger.Warnw("failed to edit attachments message", "error", err)
	}
	return h.botService.SendMessageWithInlineKeyboard(
		chatID,
		summaryMessage(result.Conversation),
		ConfirmationKeyboard(),
	)
}

func (h *BotHandler) onConfirm(ctx context.Context, chatID, messageID, userID int64) error {
	result, err := h.useCases.ConfirmTicket.Execute(ctx, supportUC.ConfirmTicketCommand{
		TelegramUserID: userID,
	})
	if err != nil {
		return h.replyCallbackError(chatID, err)
	}

	return h.botService.EditMessageText(chatID, messageID, ticketCreatedMessage(result))
}

func (h *BotHandler) onCancelFromKeyboard(ctx context.Context, chatID, messageID, userID int64) error {
	err := h.useCases.CancelConversation.Execute(ctx, supportUC.CancelConversationCommand{
		TelegramUserID: userID,
	})
	if err != nil && !errors.IsNotFoundError(err) {
		return h.replyError(chatID, err)
	}

	return h.botService.EditMessageText(chatID, messageID, conversationCancelledMessage())
}

// promptForStep re-sends the prompt for whatever step the conversation is
// waiting on. Used when resuming and when the user sends something unexpected.
func (h *BotHandler) promptForStep(ctx context.Context, chatID int64, dto *supportUC.ConversationDTO) error {
	switch conversation.Step(dto.Step) {
	case conversation.StepCategory:
		return h.botService.SendMessageWithInlineKeyboard(chatID, categoryPrompt(), CategoryKeyboard())
	case conversation.StepGame:
		return h.botService.SendMessageWithInlineKeyboard(chatID, gamePrompt(), GameKeyboard())
	case conversation.StepTiming:
		return h.botService.SendMessageWithInlineKeyboard(chatID, timingPrompt(), TimingKeyboard())
	case conversation.StepDescription:
		return h.botService.SendMessage(chatID, descriptionPrompt())
	case conversation.StepAttachments:
		return h.botService.SendMessageWithInlineKeyboard(chatID, attachmentsPrompt(), AttachmentsKeyboard(dto.AttachmentCount))
	case conversation.StepConfirmation:
		return h.botService.SendMessageWithInlineKeyboard(chatID, summaryMessage(dto), ConfirmationKeyboard())
	default:
		return h.botService.SendMessage(chatID, conversationExpiredHint())
	}
}

// replyError translates application errors into friendly Portuguese replies.
// Internal errors get a generic apology; the details stay in the logs.
func (h *BotHandler) replyError(chatID int64, err error) error {
	switch {
	case errors.IsValidationError(err):
		return h.botService.SendMessage(chatID, "⚠️ "+EscapeHTML(userFacingDetail(err)))
	case errors.IsLimitExceededError(err):
		return h.botService.SendMessage(chatID, "⚠️ Limite de anexos atingido. Toque em <b>Concluir anexos</b> para continuar.")
	case errors.IsInvalidStateError(err):
		return h.botService.SendMessage(chatID, "⚠️ Essa ação não vale para a etapa atual. Siga as opções da última mensagem.")
	case errors.IsNotFoundError(err):
		return h.botService.SendMessage(chatID, conversationExpiredHint())
	case errors.IsConflictError(err):
		return h.botService.SendMessage(chatID, "⚠️ Recebi dois toques ao mesmo tempo. Tente de novo.")
	default:
		h.logger.Errorw("unexpected error handling update", "error", err)
		return h.botService.SendMessage(chatID, "😔 Algo deu errado por aqui. Tente novamente em instantes.")
	}
}

// replyCallbackError handles errors raised from inline keyboard taps. A
// missing conversation usually means the form expired under the keyboard.
func (h *BotHandler) replyCallbackError(chatID int64, err error) error {
	if errors.IsNotFoundError(err) {
		return h.botService.SendMessage(chatID, conversationExpiredHint())
	}
	return h.replyError(chatID, err)
}

func userFacingDetail(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return "Entrada inválida."
}
