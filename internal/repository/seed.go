package repository

import (
	"context"
	"time"

	"pykids-service/internal/models"

	"github.com/google/uuid"
)

// defaultExercises is the starter question set for a fresh installation.
var defaultExercises = []models.Exercise{
	{
		Title:      "Imprimindo na tela",
		Difficulty: models.DifficultyEasy,
		Content: models.ExerciseContent{
			Question:      "Qual comando usamos para imprimir algo na tela em Python?",
			Options:       []string{"show()", "print()", "write()", "display()"},
			CorrectAnswer: 1,
			Explanation:   "A função print() é usada para exibir texto na tela em Python!",
		},
	},
	{
		Title:      "Criando variáveis",
		Difficulty: models.DifficultyEasy,
		Content: models.ExerciseContent{
			Question:      "Como criamos uma variável chamada 'nome' com o valor 'João'?",
			Options:       []string{"nome = João", "nome = 'João'", "var nome = João", "let nome = 'João'"},
			CorrectAnswer: 1,
			Explanation:   "Em Python, strings devem estar entre aspas: nome = 'João'",
		},
	},
	{
		Title:      "Repetindo código",
		Difficulty: models.DifficultyMedium,
		Content: models.ExerciseContent{
			Question:      "Qual estrutura usamos para repetir um código várias vezes?",
			Options:       []string{"if", "for", "def", "import"},
			CorrectAnswer: 1,
			Explanation:   "O loop 'for' nos permite repetir código várias vezes!",
		},
	},
	{
		Title:      "Comparando números",
		Difficulty: models.DifficultyMedium,
		Content: models.ExerciseContent{
			Question:      "Como verificamos se um número é maior que 10?",
			Options:       []string{"if numero > 10:", "if numero == 10:", "if numero < 10:", "for numero > 10:"},
			CorrectAnswer: 0,
			Explanation:   "Usamos 'if numero > 10:' para verificar se é maior que 10!",
		},
	},
	{
		Title:      "Tipos de dados",
		Difficulty: models.DifficultyHard,
		Content: models.ExerciseContent{
			Question:      "Qual é o tipo de dados para números com casas decimais?",
			Options:       []string{"int", "float", "str", "bool"},
			CorrectAnswer: 1,
			Explanation:   "O tipo 'float' é usado para números decimais como 3.14!",
		},
	},
}

// SeedDefaults inserts the starter exercises when the collection is empty.
func (r *ExerciseRepository) SeedDefaults(ctx context.Context) error {
	count, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	base := time.Now()
	for i, ex := range defaultExercises {
		ex.ID = uuid.NewString()
		ex.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		ex.EnsurePoints()
		if err := r.Create(ctx, &ex); err != nil {
			return err
		}
	}
	return nil
}
