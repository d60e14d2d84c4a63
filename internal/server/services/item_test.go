package services

import (
	"context"
	"errors"
	"testing"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
)

func storedItems() []*models.GiftItem {
	return []*models.GiftItem{
		{ID: "i1", ListID: "l1", Name: "Socks", IsBought: true, BoughtBy: "bob"},
		{ID: "i2", ListID: "l1", Name: "Book", IsBought: false},
	}
}

func TestListForRequester_OwnerIsMasked(t *testing.T) {
	m := &fakeRepoManager{
		l: &fakeListsRepo{getOut: &models.GiftList{ID: "l1", OwnerID: "owner"}},
		i: &fakeItemsRepo{listOut: storedItems()},
	}
	s := NewItemService(m)

	got, err := s.ListForRequester(context.Background(), "l1", "owner")
	if err != nil {
		t.Fatalf("ListForRequester error: %v", err)
	}
	for _, item := range got {
		if item.IsBought {
			t.Fatalf("owner must never see isBought=true: %+v", item)
		}
		if item.BoughtBy != "" {
			t.Fatalf("owner must never see boughtBy: %+v", item)
		}
	}
}

func TestListForRequester_VisitorSeesStoredValues(t *testing.T) {
	m := &fakeRepoManager{
		l: &fakeListsRepo{getOut: &models.GiftList{ID: "l1", OwnerID: "owner"}},
		i: &fakeItemsRepo{listOut: storedItems()},
	}
	s := NewItemService(m)

	got, err := s.ListForRequester(context.Background(), "l1", "visitor")
	if err != nil {
		t.Fatalf("ListForRequester error: %v", err)
	}
	if !got[0].IsBought || got[0].BoughtBy != "bob" {
		t.Fatalf("visitor must see stored bought status: %+v", got[0])
	}
}

func TestListForRequester_AnonymousSeesStoredValues(t *testing.T) {
	m := &fakeRepoManager{
		l: &fakeListsRepo{getOut: &models.GiftList{ID: "l1", OwnerID: "owner"}},
		i: &fakeItemsRepo{listOut: storedItems()},
	}
	s := NewItemService(m)

	got, err := s.ListForRequester(context.Background(), "l1", "")
	if err != nil {
		t.Fatalf("ListForRequester error: %v", err)
	}
	if !got[0].IsBought {
		t.Fatalf("anonymous visitor must see stored bought status: %+v", got[0])
	}
}

func TestListForRequester_UnknownListReturnsRawItems(t *testing.T) {
	m := &fakeRepoManager{
		l: &fakeListsRepo{getErr: common.ErrorNotFound},
		i: &fakeItemsRepo{listOut: nil},
	}
	s := NewItemService(m)

	got, err := s.ListForRequester(context.Background(), "ghost", "anyone")
	if err != nil {
		t.Fatalf("ListForRequester error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no items, got %d", len(got))
	}
}

func TestMaskBoughtStatus_DoesNotMutateStored(t *testing.T) {
	stored := storedItems()

	masked := MaskBoughtStatus(stored)

	if masked[0].IsBought || masked[0].BoughtBy != "" {
		t.Fatalf("masked view must clear bought fields: %+v", masked[0])
	}
	if !stored[0].IsBought || stored[0].BoughtBy != "bob" {
		t.Fatalf("stored records must stay untouched: %+v", stored[0])
	}
}

func TestCreateItem_Validation(t *testing.T) {
	s := NewItemService(&fakeRepoManager{i: &fakeItemsRepo{}})

	_, err := s.Create(context.Background(), "u1", NewItemParams{ListID: "", Name: "Socks"})
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}

	_, err = s.Create(context.Background(), "u1", NewItemParams{ListID: "l1", Name: ""})
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("expected ErrorValidation, got %v", err)
	}
}

func TestCreateItem_Defaults(t *testing.T) {
	s := NewItemService(&fakeRepoManager{i: &fakeItemsRepo{}})

	item, err := s.Create(context.Background(), "u1", NewItemParams{ListID: "l1", Name: "Socks"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if item.IsBought {
		t.Fatalf("new items must start unbought")
	}
	if item.CreatedAt == 0 {
		t.Fatalf("expected createdAt to be stamped")
	}
	if item.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestCreateItem_ForeignList(t *testing.T) {
	s := NewItemService(&fakeRepoManager{i: &fakeItemsRepo{createErr: common.ErrorNotFound}})

	_, err := s.Create(context.Background(), "intruder", NewItemParams{ListID: "l1", Name: "Socks"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestDeleteItem_Missing(t *testing.T) {
	s := NewItemService(&fakeRepoManager{i: &fakeItemsRepo{deleteOut: false}})

	err := s.Delete(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUpdateStatus_Missing(t *testing.T) {
	s := NewItemService(&fakeRepoManager{i: &fakeItemsRepo{updateErr: common.ErrorNotFound}})

	_, err := s.UpdateStatus(context.Background(), "ghost", true, "bob")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
