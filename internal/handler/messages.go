package handler

const (
	msgGreeting = "Привет! Я покажу слово на русском, а ты введи перевод на английском."
	msgUsage    = "Добавляй слова командой /add в формате: слово - перевод\n" +
		"Например: /add кошка - cat\n\n" +
		"Можно сразу несколько: через запятую или точку с запятой, " +
		"либо каждое с новой строки. Ещё можно ответить командой /add на сообщение со словами."
	msgAddFormat       = "Используй формат: слово - перевод\nНапример: кошка - cat"
	msgEmptyDictionary = "Словарь пуст. Добавь слова командой /add."
	msgNoSession       = "Нажми /start, чтобы начать."
	msgAskWord         = "Переведи: %s"
	msgCorrect         = "✅ Правильно!"
	msgWrong           = "❌ Неправильно. Правильный ответ: %s"
	msgSkipped         = "Правильный ответ: %s"
	msgAdded           = "Слова добавлены (%d):"
	msgAddErrors       = "Не удалось добавить:"
	msgSaveFailed      = "Не удалось сохранить слова. Попробуйте ещё раз."
)
