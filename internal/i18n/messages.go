package i18n

import "fmt"

var messages = map[string]LocalizedString{
	"app_name": {Portuguese: "EcoAmazônia", English: "EcoAmazônia", Spanish: "EcoAmazônia"},

	// Welcome
	"welcome_tagline":   {Portuguese: "Proteja a floresta, um guardião de cada vez.", English: "Protect the forest, one guardian at a time.", Spanish: "Protege el bosque, un guardián a la vez."},
	"welcome_press_key": {Portuguese: "Pressione qualquer tecla para começar", English: "Press any key to start", Spanish: "Presiona cualquier tecla para empezar"},

	// Home
	"home_guardians": {Portuguese: "Guardiões da Amazônia", English: "Guardians of the Amazon", Spanish: "Guardianes de la Amazonía"},
	"home_quiz":      {Portuguese: "Quiz do Clima", English: "Climate Quiz", Spanish: "Quiz del Clima"},
	"home_history":   {Portuguese: "Histórico", English: "History", Spanish: "Historial"},
	"home_language":  {Portuguese: "Idioma: %s", English: "Language: %s", Spanish: "Idioma: %s"},
	"home_logout":    {Portuguese: "Sair", English: "Log out", Spanish: "Cerrar sesión"},
	"home_greeting":  {Portuguese: "Olá, %s! Você tem %d PN.", English: "Hi, %s! You have %d PN.", Spanish: "¡Hola, %s! Tienes %d PN."},
	"home_no_llm":    {Portuguese: "Sem chave de IA: o quiz usa perguntas padrão.", English: "No AI key: the quiz uses standard questions.", Spanish: "Sin clave de IA: el quiz usa preguntas estándar."},
	"home_update":    {Portuguese: "Nova versão disponível: %s (ecoamazonia update)", English: "New version available: %s (ecoamazonia update)", Spanish: "Nueva versión disponible: %s (ecoamazonia update)"},

	// Auth
	"auth_title":          {Portuguese: "Entrar", English: "Sign in", Spanish: "Iniciar sesión"},
	"auth_username":       {Portuguese: "Usuário", English: "Username", Spanish: "Usuario"},
	"auth_password":       {Portuguese: "Senha (4 a 8 caracteres)", English: "Password (4 to 8 characters)", Spanish: "Contraseña (4 a 8 caracteres)"},
	"auth_toggle_signup":  {Portuguese: "Tab: criar conta", English: "Tab: create account", Spanish: "Tab: crear cuenta"},
	"auth_toggle_login":   {Portuguese: "Tab: já tenho conta", English: "Tab: I have an account", Spanish: "Tab: ya tengo cuenta"},
	"auth_signup_title":   {Portuguese: "Criar conta", English: "Create account", Spanish: "Crear cuenta"},
	"auth_bad_password":   {Portuguese: "A senha deve ter entre 4 e 8 caracteres.", English: "Password must be 4 to 8 characters.", Spanish: "La contraseña debe tener entre 4 y 8 caracteres."},
	"auth_user_exists":    {Portuguese: "Este usuário já existe.", English: "This username is taken.", Spanish: "Este usuario ya existe."},
	"auth_invalid":        {Portuguese: "Usuário ou senha inválidos.", English: "Invalid username or password.", Spanish: "Usuario o contraseña inválidos."},
	"auth_empty_username": {Portuguese: "Informe um usuário.", English: "Enter a username.", Spanish: "Ingresa un usuario."},
	"auth_bad_username":   {Portuguese: "Use apenas letras, números, ponto, hífen ou sublinhado.", English: "Use only letters, digits, dot, hyphen or underscore.", Spanish: "Usa solo letras, números, punto, guion o guion bajo."},

	// Guardians list
	"guardians_intro":        {Portuguese: "Desbloqueie os guardiões lendários da floresta usando seus Pontos de Natureza (PN).", English: "Unlock the legendary guardians of the forest with your Nature Points (PN).", Spanish: "Desbloquea a los guardianes legendarios del bosque con tus Puntos de Naturaleza (PN)."},
	"guardians_unlock":       {Portuguese: "Desbloquear (%d PN)", English: "Unlock (%d PN)", Spanish: "Desbloquear (%d PN)"},
	"guardians_insufficient": {Portuguese: "PN insuficiente (%d PN)", English: "Not enough PN (%d PN)", Spanish: "PN insuficiente (%d PN)"},
	"guardians_continue":     {Portuguese: "Continuar Jornada", English: "Continue Journey", Spanish: "Continuar Viaje"},
	"guardians_review":       {Portuguese: "Rever Jornada", English: "Review Journey", Spanish: "Revisar Viaje"},
	"guardians_unlocked":     {Portuguese: "%s desbloqueado!", English: "%s unlocked!", Spanish: "¡%s desbloqueado!"},

	// Journey
	"gdetail_loading":               {Portuguese: "Carregando...", English: "Loading...", Spanish: "Cargando..."},
	"gdetail_start_journey":         {Portuguese: "Iniciar Jornada", English: "Start Journey", Spanish: "Iniciar Viaje"},
	"gdetail_stage_title":           {Portuguese: "Etapa %d: %s", English: "Stage %d: %s", Spanish: "Etapa %d: %s"},
	"gdetail_stage_complete_title":  {Portuguese: "Etapa %d Concluída!", English: "Stage %d Complete!", Spanish: "¡Etapa %d Completada!"},
	"gdetail_stage_complete_points": {Portuguese: "+%d PN", English: "+%d PN", Spanish: "+%d PN"},
	"gdetail_next_stage":            {Portuguese: "Próxima Etapa", English: "Next Stage", Spanish: "Siguiente Etapa"},
	"gdetail_journey_complete":      {Portuguese: "Jornada Concluída!", English: "Journey Complete!", Spanish: "¡Viaje Completado!"},
	"gdetail_final_reward":          {Portuguese: "Recompensa final: +%d PN", English: "Final reward: +%d PN", Spanish: "Recompensa final: +%d PN"},
	"gdetail_return_guardians":      {Portuguese: "Voltar aos Guardiões", English: "Back to Guardians", Spanish: "Volver a los Guardianes"},
	"gdetail_blocked":               {Portuguese: "Não foi possível continuar esta jornada.", English: "Unable to continue this journey.", Spanish: "No es posible continuar este viaje."},
	"gdetail_self_report":           {Portuguese: "Conclua a atividade e pressione Enter.", English: "Finish the activity and press Enter.", Spanish: "Completa la actividad y presiona Enter."},
	"gdetail_termo_hint":            {Portuguese: "Dica: %s", English: "Hint: %s", Spanish: "Pista: %s"},
	"gdetail_termo_attempts":        {Portuguese: "Tentativas restantes: %d", English: "Attempts left: %d", Spanish: "Intentos restantes: %d"},
	"gdetail_termo_lost":            {Portuguese: "Não foi dessa vez! A palavra era %s. Enter para nova palavra.", English: "Not this time! The word was %s. Enter for a new word.", Spanish: "¡No esta vez! La palabra era %s. Enter para una nueva palabra."},
	"gdetail_termo_length":          {Portuguese: "A palavra tem %d letras.", English: "The word has %d letters.", Spanish: "La palabra tiene %d letras."},
	"gdetail_scramble_wrong":        {Portuguese: "Ainda não está certo. Tente de novo!", English: "Not quite right. Try again!", Spanish: "Aún no es correcto. ¡Inténtalo de nuevo!"},
	"gdetail_riddle_wrong":          {Portuguese: "Resposta incorreta. Tente novamente!", English: "Wrong answer. Try again!", Spanish: "Respuesta incorrecta. ¡Inténtalo de nuevo!"},
	"gdetail_wordsearch_found":      {Portuguese: "Encontradas: %d/%d", English: "Found: %d/%d", Spanish: "Encontradas: %d/%d"},
	"gdetail_wordsearch_prompt":     {Portuguese: "Digite linha,coluna,linha,coluna (ex: 1,1,1,4)", English: "Type row,col,row,col (e.g. 1,1,1,4)", Spanish: "Escribe fila,col,fila,col (ej: 1,1,1,4)"},
	"gdetail_wordsearch_miss":       {Portuguese: "Nenhuma palavra ali.", English: "No word there.", Spanish: "Ninguna palabra allí."},
	"gdetail_choice_correct_needed": {Portuguese: "Acertos: %d/%d", English: "Correct: %d/%d", Spanish: "Aciertos: %d/%d"},
	"gdetail_choice_fetching":       {Portuguese: "Buscando pergunta...", English: "Fetching question...", Spanish: "Buscando pregunta..."},
	"gdetail_puzzle_grid":           {Portuguese: "Quebra-cabeça de %d x %d peças", English: "A %d x %d piece puzzle", Spanish: "Rompecabezas de %d x %d piezas"},
	"gdetail_memory_words":          {Portuguese: "Pares: %s", English: "Pairs: %s", Spanish: "Parejas: %s"},
	"gdetail_cleanup_question":      {Portuguese: "Em qual lixeira vai: %s?", English: "Which bin does this go in: %s?", Spanish: "¿En qué papelera va: %s?"},
	"gdetail_cleanup_left":          {Portuguese: "Itens no rio: %d", English: "Items in the river: %d", Spanish: "Objetos en el río: %d"},
	"gdetail_cleanup_wrong":         {Portuguese: "Ops! %s não vai aí.", English: "Oops! %s doesn't go there.", Spanish: "¡Ups! %s no va ahí."},
	"gdetail_cleanup_bin_plastic":   {Portuguese: "Plástico", English: "Plastic", Spanish: "Plástico"},
	"gdetail_cleanup_bin_metal":     {Portuguese: "Metal", English: "Metal", Spanish: "Metal"},
	"gdetail_cleanup_bin_paper":     {Portuguese: "Papel", English: "Paper", Spanish: "Papel"},
	"gdetail_cleanup_bin_organic":   {Portuguese: "Orgânico", English: "Organic", Spanish: "Orgánico"},
	"gdetail_rescue_animals":        {Portuguese: "Animais para resgatar: %s", English: "Animals to rescue: %s", Spanish: "Animales para rescatar: %s"},
	"gdetail_adventure_phase":       {Portuguese: "Fase %d de %d", English: "Phase %d of %d", Spanish: "Fase %d de %d"},
	"gdetail_choice_next":           {Portuguese: "Enter para continuar", English: "Enter to continue", Spanish: "Enter para continuar"},

	// Quiz
	"quiz_loading":     {Portuguese: "Gerando perguntas...", English: "Generating questions...", Spanish: "Generando preguntas..."},
	"quiz_correct":     {Portuguese: "Correto! +%d PN", English: "Correct! +%d PN", Spanish: "¡Correcto! +%d PN"},
	"quiz_incorrect":   {Portuguese: "Incorreto. Resposta: %s", English: "Incorrect. Answer: %s", Spanish: "Incorrecto. Respuesta: %s"},
	"quiz_finished":    {Portuguese: "Quiz concluído! %d de %d corretas.", English: "Quiz finished! %d of %d correct.", Spanish: "¡Quiz terminado! %d de %d correctas."},
	"quiz_progress":    {Portuguese: "Pergunta %d de %d", English: "Question %d of %d", Spanish: "Pregunta %d de %d"},
	"quiz_unavailable": {Portuguese: "Perguntas da IA indisponíveis; usando perguntas padrão.", English: "AI questions unavailable; using standard questions.", Spanish: "Preguntas de IA no disponibles; usando preguntas estándar."},

	"quiz_explanation": {Portuguese: "Explicação: %s", English: "Explanation: %s", Spanish: "Explicación: %s"},
	"quiz_next":        {Portuguese: "Enter para a próxima pergunta", English: "Enter for the next question", Spanish: "Enter para la siguiente pregunta"},

	// Quiz summary
	"summary_title":    {Portuguese: "Resultado do Quiz", English: "Quiz Results", Spanish: "Resultado del Quiz"},
	"summary_score":    {Portuguese: "Acertos: %d de %d", English: "Correct: %d of %d", Spanish: "Aciertos: %d de %d"},
	"summary_points":   {Portuguese: "+%d PN", English: "+%d PN", Spanish: "+%d PN"},
	"summary_perfect":  {Portuguese: "Perfeito! Você é um verdadeiro guardião.", English: "Perfect! You are a true guardian.", Spanish: "¡Perfecto! Eres un verdadero guardián."},
	"summary_good":     {Portuguese: "Muito bem! Continue aprendendo.", English: "Well done! Keep learning.", Spanish: "¡Muy bien! Sigue aprendiendo."},
	"summary_try":      {Portuguese: "Continue tentando, a floresta conta com você!", English: "Keep trying, the forest is counting on you!", Spanish: "¡Sigue intentando, el bosque cuenta contigo!"},
	"summary_fallback": {Portuguese: "Perguntas padrão", English: "Standard questions", Spanish: "Preguntas estándar"},
	"summary_review":   {Portuguese: "Respostas", English: "Answers", Spanish: "Respuestas"},

	// History
	"history_empty":   {Portuguese: "Nenhum evento ainda.", English: "No events yet.", Spanish: "Ningún evento aún."},
	"history_off":     {Portuguese: "Histórico indisponível.", English: "History is unavailable.", Spanish: "Historial no disponible."},
	"history_loading": {Portuguese: "Carregando histórico...", English: "Loading history...", Spanish: "Cargando historial..."},
	"history_stage":   {Portuguese: "%s, etapa %d", English: "%s, stage %d", Spanish: "%s, etapa %d"},
	"history_replay":  {Portuguese: "(revisão)", English: "(replay)", Spanish: "(repaso)"},
	"history_quiz":    {Portuguese: "Quiz: %d/%d corretas", English: "Quiz: %d/%d correct", Spanish: "Quiz: %d/%d correctas"},
	"history_unlock":  {Portuguese: "Desbloqueio: %s", English: "Unlock: %s", Spanish: "Desbloqueo: %s"},
	"history_award":   {Portuguese: "Pontos: %s", English: "Points: %s", Spanish: "Puntos: %s"},
	"history_balance": {Portuguese: "Saldo: %d PN", English: "Balance: %d PN", Spanish: "Saldo: %d PN"},
	"history_topic":   {Portuguese: "Tema: %s", English: "Topic: %s", Spanish: "Tema: %s"},
}

// T returns the message for key in lang, formatted with args.
// Unknown keys render as the key itself.
func T(lang Language, key string, args ...any) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	s := m.Get(lang)
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}
