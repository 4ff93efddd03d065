// Package store persists the whole domain state to a flat text file and
// restores it. The format is one `;`-delimited record per line, tagged by a
// leading type marker, written in dependency order so that a record only
// ever references entities from earlier sections, by natural key (ingredient
// and pizza by name, account by email).
package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lmontay/pizzeria-backoffice/internal/models"
	"github.com/lmontay/pizzeria-backoffice/internal/services"
	log "github.com/sirupsen/logrus"
)

// Record tags, also the section order of a saved file.
const (
	tagIngredient = "INGREDIENT"
	tagPizza      = "PIZZA"
	tagAccount    = "ACCOUNT"
	tagForbidden  = "FORBIDDEN"
	tagOrder      = "ORDER"
	tagReview     = "REVIEW"
)

const fieldSep = ";"

// photoNone is the literal written when a pizza has no photo.
const photoNone = "null"

// Store reads and writes the domain state held by the three services.
type Store struct {
	catalog  services.CatalogService
	accounts services.AccountService
	orders   services.OrderService
}

// New creates a store over the given services.
func New(catalog services.CatalogService, accounts services.AccountService, orders services.OrderService) *Store {
	return &Store{catalog: catalog, accounts: accounts, orders: orders}
}

// Save writes the full domain state to the file, replacing its contents.
// Only processed (Validated or Fulfilled) orders are persisted: an order
// still being built is not part of the pizzeria's history.
func (s *Store) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create data file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	for _, ing := range s.catalog.Ingredients() {
		writeRecord(w, tagIngredient, ing.Name, formatPrice(ing.Price))
	}

	for _, p := range s.catalog.Pizzas() {
		photo := p.Photo
		if photo == "" {
			photo = photoNone
		}
		fields := []string{p.Name, string(p.Category), formatPrice(p.Price()), photo}
		for _, ing := range p.Ingredients {
			fields = append(fields, ing.Name)
		}
		writeRecord(w, tagPizza, fields...)
	}

	for _, c := range s.accounts.Clients() {
		a := c.Account
		writeRecord(w, tagAccount, a.Email, a.Password,
			a.Info.Surname, a.Info.FirstName, a.Info.Address, strconv.Itoa(a.Info.Age))
	}

	for _, category := range models.Categories() {
		for _, ing := range s.catalog.Ingredients() {
			if s.catalog.IsForbidden(category, ing) {
				writeRecord(w, tagForbidden, ing.Name, string(category))
			}
		}
	}

	for _, o := range s.orders.Processed() {
		fields := []string{o.Client.Email(), string(o.State)}
		for _, p := range o.Pizzas {
			fields = append(fields, p.Name)
		}
		writeRecord(w, tagOrder, fields...)
	}

	for _, p := range s.catalog.Pizzas() {
		for _, r := range p.Reviews {
			writeRecord(w, tagReview, p.Name, r.Author.Email(), strconv.Itoa(r.Score), r.Comment)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	log.WithField("file", path).Info("domain state saved")
	return nil
}

// Load replaces the in-memory state with the file's contents. The file is
// processed top to bottom, so each section can resolve references into the
// ones before it. The load is not transactional: a malformed record aborts
// it and leaves whatever was already rebuilt in memory.
//
// A missing file keeps the underlying not-found error in the wrap, so
// callers can tell it apart with errors.Is(err, fs.ErrNotExist).
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	s.catalog.Reset()
	s.accounts.Reset()
	s.orders.Reset()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := s.loadLine(scanner.Text()); err != nil {
			return fmt.Errorf("load %s line %d: %w", path, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read data file: %w", err)
	}
	log.WithFields(log.Fields{"file": path, "lines": lineNo}).Info("domain state loaded")
	return nil
}

func (s *Store) loadLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parts := strings.Split(line, fieldSep)

	switch parts[0] {
	case tagIngredient:
		if len(parts) < 3 {
			return nil
		}
		price, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return fmt.Errorf("ingredient price: %w", err)
		}
		// Duplicate or invalid records are ignored, like live creation.
		_ = s.catalog.CreateIngredient(parts[1], price)

	case tagPizza:
		if len(parts) < 5 {
			return nil
		}
		category, err := models.ParseCategory(parts[2])
		if err != nil {
			return err
		}
		price, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return fmt.Errorf("pizza price: %w", err)
		}
		p := s.catalog.CreatePizza(parts[1], category)
		if p == nil {
			return nil
		}
		// Unknown or forbidden ingredient names are skipped, not fatal.
		for _, name := range parts[5:] {
			_ = s.catalog.AddIngredientToPizza(p, name)
		}
		// The price goes on after the ingredients so the minimum-price
		// floor is computed against the full recipe. A price below the
		// floor is dropped and the computed price applies.
		s.catalog.SetManualPrice(p, price)
		if parts[4] != photoNone {
			s.catalog.SetPhoto(p, parts[4])
		}

	case tagAccount:
		if len(parts) < 7 {
			return nil
		}
		age, err := strconv.Atoi(parts[6])
		if err != nil {
			return fmt.Errorf("account age: %w", err)
		}
		info := &models.PersonalInfo{
			Surname:   parts[3],
			FirstName: parts[4],
			Address:   parts[5],
			Age:       age,
		}
		s.accounts.Register(parts[1], parts[2], info)

	case tagForbidden:
		if len(parts) < 3 {
			return nil
		}
		category, err := models.ParseCategory(parts[2])
		if err != nil {
			return err
		}
		// Set, never toggle: loading the same prohibition twice must not
		// lift it.
		s.catalog.SetForbidden(parts[1], category)

	case tagOrder:
		if len(parts) < 3 {
			return nil
		}
		state, err := models.ParseOrderState(parts[2])
		if err != nil {
			return err
		}
		client := s.accounts.ClientByEmail(parts[1])
		if client == nil {
			return nil
		}
		var pizzas []*models.Pizza
		for _, name := range parts[3:] {
			if p := s.catalog.PizzaByName(name); p != nil {
				pizzas = append(pizzas, p)
			}
		}
		s.orders.RestoreOrder(client, state, pizzas)

	case tagReview:
		if len(parts) < 5 {
			return nil
		}
		score, err := strconv.Atoi(parts[3])
		if err != nil {
			return fmt.Errorf("review score: %w", err)
		}
		pizza := s.catalog.PizzaByName(parts[1])
		client := s.accounts.ClientByEmail(parts[2])
		if pizza == nil || client == nil {
			return nil
		}
		// Restored history is assumed valid: the "ordered and not yet
		// reviewed" guard is bypassed.
		review, err := models.NewReview(score, parts[4], client)
		if err != nil {
			return err
		}
		pizza.AttachReview(review)
	}
	return nil
}

func writeRecord(w *bufio.Writer, tag string, fields ...string) {
	w.WriteString(tag)
	for _, f := range fields {
		w.WriteString(fieldSep)
		w.WriteString(f)
	}
	w.WriteByte('\n')
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
