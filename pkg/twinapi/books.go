package twinapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/twinops/twinctl/pkg/envelope"
	"github.com/twinops/twinctl/pkg/twin"
)

// ListBooks returns the twin's library. A 404 means the twin has no
// books yet and yields an empty list; an unrecognized response shape
// degrades to an empty list as well, matching the list-loader policy.
func (c *Client) ListBooks(ctx context.Context, twinID string) (books []twin.Book, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/books", twinID))
	if err != nil {
		if IsNotFound(err) {
			books = []twin.Book{}
			err = nil
			return books, err
		}
		err = errors.Wrap(err, "failed to list books")
		return books, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		books = []twin.Book{}
		err = nil
		return books, err
	}

	if payload.Kind == envelope.KindObject {
		books = []twin.Book{twin.DecodeBook(payload.Raw)}
		return books, err
	}

	books = twin.DecodeBooks(payload.Raw)
	return books, err
}

// GetBook fetches one book by id.
func (c *Client) GetBook(ctx context.Context, twinID, bookID string) (book twin.Book, err error) {
	var body []byte
	body, err = c.get(ctx, fmt.Sprintf("/twins/%s/books/%s", twinID, bookID))
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch book %s", bookID)
		return book, err
	}

	var payload envelope.Payload
	payload, err = envelope.Normalize(body)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode book %s", bookID)
		return book, err
	}

	book = twin.DecodeBook(payload.Raw)
	return book, err
}

// CreateBook creates a book. Defaults (generated id, "Por leer" state,
// zero rating) are applied client-side before the POST; the returned
// book is the server's echo when it sends one, otherwise what was sent.
func (c *Client) CreateBook(ctx context.Context, twinID string, book twin.Book) (created twin.Book, err error) {
	book.ApplyDefaults()
	err = book.Validate()
	if err != nil {
		return created, err
	}

	var payload []byte
	payload, err = json.Marshal(book)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal book")
		return created, err
	}

	var body []byte
	body, err = c.postJSON(ctx, fmt.Sprintf("/twins/%s/books", twinID), payload)
	if err != nil {
		err = errors.Wrap(err, "failed to create book")
		return created, err
	}

	created = book
	if normalized, normErr := envelope.Normalize(body); normErr == nil && normalized.Kind == envelope.KindObject {
		created = twin.DecodeBook(normalized.Raw)
	}
	return created, err
}

// UpdateBook replaces a book via full-entity PUT.
func (c *Client) UpdateBook(ctx context.Context, twinID string, book twin.Book) (err error) {
	err = book.Validate()
	if err != nil {
		return err
	}

	var payload []byte
	payload, err = json.Marshal(book)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal book")
		return err
	}

	_, err = c.putJSON(ctx, fmt.Sprintf("/twins/%s/books/%s", twinID, book.ID), payload)
	if err != nil {
		err = errors.Wrapf(err, "failed to update book %s", book.ID)
		return err
	}
	return err
}

// DeleteBook removes a book by id.
func (c *Client) DeleteBook(ctx context.Context, twinID, bookID string) (err error) {
	err = c.delete(ctx, fmt.Sprintf("/twins/%s/books/%s", twinID, bookID))
	if err != nil {
		err = errors.Wrapf(err, "failed to delete book %s", bookID)
		return err
	}
	return err
}
