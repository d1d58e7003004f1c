// Package texts holds the message catalog in the default language.
// Messages for other session languages are produced by the translation
// service at send time.
package texts

import (
	"fmt"
	"strings"

	"intakebot/internal/domain"
)

const (
	ClientCheck     = "Вы уже являетесь нашим клиентом?"
	AskContract     = "Отправьте номер вашего договора."
	ContractMissing = "Договор с таким номером не найден, проверьте номер."

	MenuPrompt   = "Чем мы можем помочь? Выберите пункт меню."
	ContractLink = "Наш типовой договор можно посмотреть по ссылке ниже."
	About        = "Мы — студия разработки программных решений. Делаем чат-ботов, " +
		"интеграции и внутренние сервисы под задачи заказчика, от идеи до поддержки."
	Examples = "Примеры наших работ: бот записи для сети клиник, " +
		"ассистент техподдержки интернет-магазина, внутренний помощник отдела продаж."

	AskProject      = "Расскажите о вашем проекте."
	AskTask         = "Какую задачу нужно решить?"
	AskRestrictions = "Какие есть ограничения: сроки, бюджет, технологии?"
	AskContact      = "Оставьте контактные данные для связи."

	SelectLanguage = "Выберите предпочитаемый язык."
	AdviceFailed   = "К сожалению, сейчас я не могу подготовить рекомендации. Попробуйте позже."
)

// Greeting welcomes a user by display name
func Greeting(name string) string {
	return fmt.Sprintf("%s, этот бот расскажет о наших продуктах на выбранном вами языке "+
		"и поможет подобрать решение. Используйте команды, чтобы сменить язык и пообщаться со мной.", name)
}

// ContractEcho repeats the number the user sent
func ContractEcho(number string) string {
	return fmt.Sprintf("Ваш номер договора: %s", number)
}

// ContractStatus reports the looked-up status
func ContractStatus(status string) string {
	return fmt.Sprintf("Статус по вашему договору: %s", status)
}

// LanguageSet confirms a successful language selection
func LanguageSet(language string) string {
	return fmt.Sprintf("Язык %s установлен.", language)
}

// LanguageUnknown reports an unsupported language choice
func LanguageUnknown(language string) string {
	return fmt.Sprintf("Я пока не знаю язык %s, попробуйте другой.", language)
}

// FormSummary renders collected answers: problem fields first, the
// contact block separated at the end.
func FormSummary(form domain.Form) string {
	titles := map[string]string{
		domain.FieldProject:      "Проект",
		domain.FieldTask:         "Задача",
		domain.FieldRestrictions: "Ограничения",
	}

	var b strings.Builder
	b.WriteString("Ваша заявка:\n")
	for _, field := range domain.ProblemFields {
		fmt.Fprintf(&b, "%s: %s\n", titles[field], form[field])
	}
	fmt.Fprintf(&b, "\nКонтакты: %s", form[domain.FieldContactInfo])
	return b.String()
}

// ProblemStatement concatenates the problem fields for the advice request
func ProblemStatement(form domain.Form) string {
	parts := make([]string, 0, len(domain.ProblemFields))
	for _, field := range domain.ProblemFields {
		parts = append(parts, form[field])
	}
	return strings.Join(parts, ". ")
}
