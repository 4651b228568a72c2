package application

import (
	"fmt"
	"time"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
)

const (
	MsgNoAccess          = "❌ У вас нет доступа к этому функционалу."
	MsgNotOnBreak        = "❌ Вы не на перерыве. ❌"
	MsgAlreadyOnBreak    = "❌ Вы уже на перерыве. ❌"
	MsgNoBreakRights     = "❌ У вас нет возможности взять перерыв. ❌"
	MsgAllowanceSpent    = "❌ Вы не можете взять перерыв, так как исчерпано общее время перерыва."
	MsgApproveFailed     = "❌ Ошибка подтверждения завершения смены. Пользователь не на смене."
	MsgDenyFailed        = "❌ Ошибка отклонения завершения смены. Пользователь не на смене."
	MsgNoPendingRequest  = "❌ Нет активного запроса на досрочное завершение смены."
	MsgAlreadyOnShift    = "❌ Вы уже на смене. ❌"
	MsgNotOnShift        = "❌ Вы не на смене. ❌"
	MsgEarlyEndRequested = "❌ Вы не можете закончить смену, так как не прошло достаточно времени. \n✉️ Запрос отправлен старшему скауту для подтверждения."
	MsgInternalError     = "❌ Внутренняя ошибка. Попробуйте ещё раз."
	MsgChooseAction      = "✅ Выберите действие:"
)

// suppressedTexts never leave the actor's own chat.
var suppressedTexts = map[string]struct{}{
	MsgNoAccess:          {},
	MsgNotOnBreak:        {},
	MsgAlreadyOnBreak:    {},
	MsgNoBreakRights:     {},
	MsgAllowanceSpent:    {},
	MsgApproveFailed:     {},
	MsgDenyFailed:        {},
	MsgNoPendingRequest:  {},
	MsgAlreadyOnShift:    {},
	MsgNotOnShift:        {},
	MsgEarlyEndRequested: {},
	MsgInternalError:     {},
}

func IsSuppressed(text string) bool {
	_, ok := suppressedTexts[text]
	return ok
}

func shiftStartedText(role domain.Role, name string) string {
	return fmt.Sprintf("🛴 %s %s. \nСмена #1 работу начал.", role.Label(), name)
}

func shiftEndedText(role domain.Role, name string) string {
	return fmt.Sprintf("🛴 %s %s. \nСмена #1 работу закончил.", role.Label(), name)
}

func shiftApprovedText(name string) string {
	return fmt.Sprintf("🛴 Скаут %s. \nСмена #1 работу закончил по подтверждению старшего скаута.", name)
}

func shiftDeniedText(name string) string {
	return fmt.Sprintf("❌ Запрос на досрочное завершение смены от %s отклонен старшим скаутом.", name)
}

func approvalRequestText(name string, elapsed time.Duration) string {
	return fmt.Sprintf("🔔 Запрос на досрочное завершение смены от %s. \n⏳ Прошедшее время: %s. \nПодтвердите или отклоните запрос.", name, formatElapsed(elapsed))
}

func breakStartedText(name string) string {
	return fmt.Sprintf("☕️ Скаут %s взял перерыв.", name)
}

func breakEndedText(name string, spent, remaining time.Duration) string {
	return fmt.Sprintf("☕️ Скаут %s перерыв закончил. \n⏳ Время на перерыве: %d минут. \n⌛️ Оставшееся время на перерыв: %d минут.",
		name, domain.WholeMinutes(spent), domain.WholeMinutes(remaining))
}

func breakExceededText(name string, spent, over time.Duration) string {
	return fmt.Sprintf("☕️ Скаут %s перерыв закончил. \n⏳ Время на перерыве: %d минут. \n❌ Превышено общее время перерыва на смену на %d минут.",
		name, domain.WholeMinutes(spent), domain.WholeMinutes(over))
}

// formatElapsed renders a duration as H:MM:SS.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
