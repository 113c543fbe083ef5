package advisor

const (
	// Terminal replies for the degraded paths. Neither goes through the
	// reply model.
	notFoundMessage = "No encontré productos que coincidan con tu búsqueda. ¿Me das más detalles del componente que necesitas?"
	errorMessage    = "Lo siento, tuve un error de conexión con mi cerebro digital."

	// How many prior turns ground the reply model.
	historyWindow = 5

	socialTemperature = 0.6
	socialMaxTokens   = 200

	replyTemperature = 0.6
	replyMaxTokens   = 800
)
