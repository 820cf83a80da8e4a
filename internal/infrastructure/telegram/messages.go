package telegram

import (
	"fmt"
	"strings"

	supportUC "github.com/oncabito/sentinela/internal/application/support/usecases"
	ticketUC "github.com/oncabito/sentinela/internal/application/ticket/usecases"
	"github.com/oncabito/sentinela/internal/domain/conversation"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
)

func welcomeMessage(firstName string) string {
	name := EscapeHTML(firstName)
	if name == "" {
		name = "jogador"
	}
	return fmt.Sprintf(
		"Olá, <b>%s</b>! 👋\n\n"+
			"Sou o bot de suporte da OnCabo Gaming.\n\n"+
			"• /suporte — abrir um chamado\n"+
			"• /status — ver seus chamados\n"+
			"• /cancelar — desistir do chamado em andamento\n"+
			"• /ajuda — mostrar esta mensagem",
		name,
	)
}

func categoryPrompt() string {
	return "🛠 <b>Novo chamado de suporte</b>\n\nQual é o tipo do problema?"
}

func gamePrompt() string {
	return "🎮 Em qual jogo você percebeu o problema?"
}

func customGamePrompt() string {
	return "✏️ Digite o nome do jogo:"
}

func timingPrompt() string {
	return "⏰ Quando o problema começou?"
}

func descriptionPrompt() string {
	return fmt.Sprintf(
		"📝 Descreva o problema com suas palavras.\n\n"+
			"<i>Mínimo de %d caracteres. Quanto mais detalhes, mais rápido conseguimos ajudar.</i>",
		conversation.MinDescriptionLength,
	)
}

func attachmentsPrompt() string {
	return fmt.Sprintf(
		"📎 Se quiser, envie até <b>%d</b> prints ou arquivos que mostrem o problema.\n\n"+
			"Quando terminar (ou se não tiver nenhum), toque no botão abaixo.",
		vo.MaxAttachments,
	)
}

func attachmentReceivedMessage(remaining int) string {
	if remaining == 0 {
		return "📎 Anexo recebido! Limite atingido — toque em <b>Concluir anexos</b> para continuar."
	}
	return fmt.Sprintf("📎 Anexo recebido! Você ainda pode enviar mais %d.", remaining)
}

// summaryMessage renders the confirmation screen with everything gathered so
// far. The description is user text and must be escaped.
func summaryMessage(dto *supportUC.ConversationDTO) string {
	var b strings.Builder
	b.WriteString("🔎 <b>Confira seu chamado</b>\n\n")
	fmt.Fprintf(&b, "<b>Problema:</b> %s\n", dto.CategoryLabel)
	fmt.Fprintf(&b, "<b>Jogo:</b> %s\n", EscapeHTML(dto.GameLabel))
	fmt.Fprintf(&b, "<b>Quando:</b> %s\n", dto.TimingLabel)
	fmt.Fprintf(&b, "<b>Anexos:</b> %d\n\n", dto.AttachmentCount)
	fmt.Fprintf(&b, "<b>Descrição:</b>\n%s\n\n", EscapeHTML(dto.Description))
	b.WriteString("Está tudo certo?")
	return b.String()
}

func ticketCreatedMessage(result *supportUC.ConfirmTicketResult) string {
	return fmt.Sprintf(
		"✅ <b>Chamado aberto!</b>\n\n"+
			"<b>Protocolo:</b> <code>%s</code>\n"+
			"<b>Prioridade:</b> %s\n\n"+
			"Nossa equipe já foi avisada. Guarde o protocolo para acompanhar pelo /status.",
		result.Protocol,
		urgencyLabel(result.Urgency),
	)
}

func conversationCancelledMessage() string {
	return "❌ Chamado cancelado. Se precisar, é só chamar com /suporte."
}

func conversationExpiredHint() string {
	return "⏳ Você não tem nenhum chamado em aberto. Comece um novo com /suporte."
}

func helpMessage() string {
	return "ℹ️ <b>Como funciona</b>\n\n" +
		"O /suporte abre um formulário guiado: tipo do problema, jogo, " +
		"quando começou, descrição e anexos. No final você confirma e " +
		"recebe um protocolo.\n\n" +
		"Use /status para ver seus chamados e /cancelar para desistir do " +
		"formulário em andamento."
}

// ticketListMessage renders the /status response. Tickets arrive newest first.
func ticketListMessage(tickets []*ticketUC.TicketDTO) string {
	if len(tickets) == 0 {
		return "Você ainda não tem chamados. Abra um com /suporte."
	}

	var b strings.Builder
	b.WriteString("📋 <b>Seus chamados</b>\n")
	for _, t := range tickets {
		fmt.Fprintf(&b, "\n<code>%s</code> — %s\n", t.Protocol, statusLabel(t.Status))
		fmt.Fprintf(&b, "   %s · %s\n", t.CategoryLabel, EscapeHTML(t.GameLabel))
	}
	return b.String()
}

// groupTicketMessage is posted in the support group when a ticket is created.
func groupTicketMessage(protocol, categoryLabel, gameLabel, timingLabel, urgency, description string, attachments int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>Novo chamado</b> <code>%s</code>\n\n", urgencyEmoji(urgency), protocol)
	fmt.Fprintf(&b, "<b>Problema:</b> %s\n", categoryLabel)
	fmt.Fprintf(&b, "<b>Jogo:</b> %s\n", EscapeHTML(gameLabel))
	fmt.Fprintf(&b, "<b>Quando:</b> %s\n", timingLabel)
	fmt.Fprintf(&b, "<b>Prioridade:</b> %s\n", urgencyLabel(urgency))
	fmt.Fprintf(&b, "<b>Anexos:</b> %d\n\n", attachments)
	fmt.Fprintf(&b, "%s", EscapeHTML(description))
	return b.String()
}

func statusChangedMessage(protocol, newStatus, resolutionNotes string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔔 Seu chamado <code>%s</code> mudou para <b>%s</b>.", protocol, statusLabel(newStatus))
	if resolutionNotes != "" {
		fmt.Fprintf(&b, "\n\n<b>Resolução:</b>\n%s", EscapeHTML(resolutionNotes))
	}
	return b.String()
}

var statusLabels = map[string]string{
	"pending":     "⏳ Aguardando atendimento",
	"open":        "📂 Aberto",
	"in_progress": "🔧 Em atendimento",
	"resolved":    "✅ Resolvido",
	"closed":      "🔒 Fechado",
	"cancelled":   "❌ Cancelado",
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

var urgencyLabels = map[string]string{
	"high":   "🔴 Alta",
	"normal": "🟡 Normal",
	"low":    "🟢 Baixa",
}

func urgencyLabel(urgency string) string {
	if label, ok := urgencyLabels[urgency]; ok {
		return label
	}
	return urgency
}

func urgencyEmoji(urgency string) string {
	switch urgency {
	case "high":
		return "🔴"
	case "normal":
		return "🟡"
	default:
		return "🟢"
	}
}
