package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twinops/twinctl/pkg/filterview"
	"github.com/twinops/twinctl/pkg/twin"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	booksQuery  string
	booksEstado string

	bookTitulo  string
	bookAutor   string
	bookGenero  string
	bookPaginas int
	bookFormato string
	bookEstado  string

	rateScore    float64
	rateOpinion  string
	rateTerminar bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manage the twin's library",
}

//nolint:gochecknoglobals // Cobra boilerplate
var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List books, optionally filtered by text and reading state",
	Long: `List the twin's books. --query matches title, author, genre and tags
case-insensitively; --estado narrows to one reading state. Both filters
run locally on the fetched list.`,
	RunE: runBooksList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var booksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the library",
	RunE:  runBooksAdd,
}

//nolint:gochecknoglobals // Cobra boilerplate
var booksGetCmd = &cobra.Command{
	Use:   "get <book-id>",
	Short: "Show one book",
	Args:  cobra.ExactArgs(1),
	RunE:  runBooksGet,
}

//nolint:gochecknoglobals // Cobra boilerplate
var booksRateCmd = &cobra.Command{
	Use:   "rate <book-id>",
	Short: "Rate a book and optionally mark it finished",
	Long: `Set a book's rating (0-5) and opinions. The book is fetched, the
fields are changed locally and the whole record is written back.`,
	Args: cobra.ExactArgs(1),
	RunE: runBooksRate,
}

//nolint:gochecknoglobals // Cobra boilerplate
var booksDeleteCmd = &cobra.Command{
	Use:   "delete <book-id>",
	Short: "Remove a book",
	Args:  cobra.ExactArgs(1),
	RunE:  runBooksDelete,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(booksCmd)
	booksCmd.AddCommand(booksListCmd)
	booksCmd.AddCommand(booksAddCmd)
	booksCmd.AddCommand(booksGetCmd)
	booksCmd.AddCommand(booksRateCmd)
	booksCmd.AddCommand(booksDeleteCmd)

	booksListCmd.Flags().StringVarP(&booksQuery, "query", "q", "", "Text filter over title, author, genre and tags")
	booksListCmd.Flags().StringVar(&booksEstado, "estado", filterview.All, "Reading state filter (Por leer, Leyendo, Terminado, Abandonado)")

	booksAddCmd.Flags().StringVar(&bookTitulo, "titulo", "", "Book title (required)")
	booksAddCmd.Flags().StringVar(&bookAutor, "autor", "", "Author")
	booksAddCmd.Flags().StringVar(&bookGenero, "genero", "", "Genre")
	booksAddCmd.Flags().IntVar(&bookPaginas, "paginas", 0, "Page count")
	booksAddCmd.Flags().StringVar(&bookFormato, "formato", "", "Format (Físico, Digital, Audiolibro)")
	booksAddCmd.Flags().StringVar(&bookEstado, "estado", "", "Reading state (defaults to 'Por leer')")
	_ = booksAddCmd.MarkFlagRequired("titulo")

	booksRateCmd.Flags().Float64Var(&rateScore, "score", 0, "Rating from 0 to 5 (required)")
	booksRateCmd.Flags().StringVar(&rateOpinion, "opinion", "", "Opinions about the book")
	booksRateCmd.Flags().BoolVar(&rateTerminar, "terminar", false, "Also mark the book as finished")
	_ = booksRateCmd.MarkFlagRequired("score")
}

func runBooksList(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var books []twin.Book
	err = withSpinner("Fetching books...", func() error {
		var listErr error
		books, listErr = client.ListBooks(ctx, sess.TwinID)
		return listErr
	})
	if err != nil {
		return err
	}

	matched := filterview.Filter(books, booksQuery, booksEstado,
		func(b twin.Book) []string {
			return append([]string{b.Titulo, b.Autor, b.Genero}, b.Tags...)
		},
		func(b twin.Book) string { return b.Estado },
	)

	if len(matched) == 0 {
		fmt.Println("No books found.")
		return err
	}

	for _, b := range matched {
		printBook(b)
	}
	fmt.Printf("\n%d of %d books\n", len(matched), len(books))
	return err
}

func runBooksAdd(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	book := twin.Book{
		Titulo:  bookTitulo,
		Autor:   bookAutor,
		Genero:  bookGenero,
		Paginas: bookPaginas,
		Formato: bookFormato,
		Estado:  bookEstado,
	}

	var created twin.Book
	err = withSpinner("Adding book...", func() error {
		var createErr error
		created, createErr = client.CreateBook(ctx, sess.TwinID, book)
		return createErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %q (%s)\n", created.Titulo, created.ID)
	return err
}

func runBooksGet(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var book twin.Book
	err = withSpinner("Fetching book...", func() error {
		var getErr error
		book, getErr = client.GetBook(ctx, sess.TwinID, args[0])
		return getErr
	})
	if err != nil {
		return err
	}

	printBook(book)
	if book.Opiniones != "" {
		fmt.Printf("  Opiniones: %s\n", book.Opiniones)
	}
	return err
}

func runBooksRate(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	var book twin.Book
	book, err = client.GetBook(ctx, sess.TwinID, args[0])
	if err != nil {
		return err
	}

	book.Calificacion = rateScore
	if rateOpinion != "" {
		book.Opiniones = rateOpinion
	}
	if rateTerminar {
		book.Estado = twin.BookTerminado
	}

	err = withSpinner("Saving rating...", func() error {
		return client.UpdateBook(ctx, sess.TwinID, book)
	})
	if err != nil {
		return err
	}

	fmt.Printf("Rated %q %.1f/5\n", book.Titulo, rateScore)
	return err
}

func runBooksDelete(cmd *cobra.Command, args []string) (err error) {
	_, sess, client, err := loadSetup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	err = client.DeleteBook(ctx, sess.TwinID, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Deleted book %s\n", args[0])
	return err
}

func printBook(b twin.Book) {
	line := fmt.Sprintf("- %s", b.Titulo)
	if b.Autor != "" {
		line += fmt.Sprintf(" (%s)", b.Autor)
	}
	fmt.Println(line)

	details := []string{}
	if b.Estado != "" {
		details = append(details, b.Estado)
	}
	if b.Genero != "" {
		details = append(details, b.Genero)
	}
	if b.Calificacion > 0 {
		details = append(details, fmt.Sprintf("%.1f/5", b.Calificacion))
	}
	details = append(details, b.ID)
	fmt.Printf("  %s\n", strings.Join(details, " | "))
}
