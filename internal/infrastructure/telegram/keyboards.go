package telegram

import (
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
)

// Callback data prefixes used by the support form keyboards.
const (
	callbackCategoryPrefix = "cat:"
	callbackGamePrefix     = "game:"
	callbackTimingPrefix   = "timing:"
	callbackAttachDone     = "att:done"
	callbackConfirmCreate  = "confirm:create"
	callbackConfirmCancel  = "confirm:cancel"
)

// CategoryKeyboard builds the category selection keyboard, one option per row.
func CategoryKeyboard() *InlineKeyboardMarkup {
	rows := make([][]InlineKeyboardButton, 0, len(vo.AllCategories()))
	for _, c := range vo.AllCategories() {
		rows = append(rows, NewInlineKeyboardRow(
			NewInlineKeyboardButton(c.Label(), callbackCategoryPrefix+c.String()),
		))
	}
	return NewInlineKeyboard(rows...)
}

// GameKeyboard builds the game selection keyboard, two options per row.
func GameKeyboard() *InlineKeyboardMarkup {
	keys := vo.AllGameKeys()
	rows := make([][]InlineKeyboardButton, 0, (len(keys)+1)/2)
	for i := 0; i < len(keys); i += 2 {
		row := []InlineKeyboardButton{
			NewInlineKeyboardButton(keys[i].Label(), callbackGamePrefix+keys[i].String()),
		}
		if i+1 < len(keys) {
			row = append(row, NewInlineKeyboardButton(keys[i+1].Label(), callbackGamePrefix+keys[i+1].String()))
		}
		rows = append(rows, row)
	}
	return NewInlineKeyboard(rows...)
}

// TimingKeyboard builds the timing selection keyboard, one option per row.
func TimingKeyboard() *InlineKeyboardMarkup {
	rows := make([][]InlineKeyboardButton, 0, len(vo.AllTimings()))
	for _, t := range vo.AllTimings() {
		rows = append(rows, NewInlineKeyboardRow(
			NewInlineKeyboardButton(t.Label(), callbackTimingPrefix+t.String()),
		))
	}
	return NewInlineKeyboard(rows...)
}

// AttachmentsKeyboard offers the skip/done button shown during the
// attachments step.
func AttachmentsKeyboard(attached int) *InlineKeyboardMarkup {
	label := "➡️ Pular anexos"
	if attached > 0 {
		label = "✅ Concluir anexos"
	}
	return NewInlineKeyboard(
		NewInlineKeyboardRow(NewInlineKeyboardButton(label, callbackAttachDone)),
	)
}

// ConfirmationKeyboard offers the final create/cancel choice.
func ConfirmationKeyboard() *InlineKeyboardMarkup {
	return NewInlineKeyboard(
		NewInlineKeyboardRow(
			NewInlineKeyboardButton("✅ Abrir chamado", callbackConfirmCreate),
		),
		NewInlineKeyboardRow(
			NewInlineKeyboardButton("❌ Cancelar", callbackConfirmCancel),
		),
	)
}
