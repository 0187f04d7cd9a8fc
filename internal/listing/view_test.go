package listing_test

import (
	"fmt"
	"testing"

	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/listing"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []project.Project {
	out := make([]project.Project, n)
	for i := range out {
		out[i] = project.Project{ID: fmt.Sprint(i + 1), ProjectNo: fmt.Sprintf("P-%03d", i+1), ProductionStage: "Cut"}
	}
	return out
}

func TestView_TwentySixRecords(t *testing.T) {
	v := listing.NewView(numbered(26), 0)
	require.Equal(t, listing.DefaultPageSize, v.PageSize())
	require.Equal(t, 2, v.PageCount())
	require.Len(t, v.Window(), 25)

	v.Goto(2)
	require.Equal(t, 2, v.Page())
	require.Len(t, v.Window(), 1)
	require.Equal(t, "26", v.Window()[0].ID)

	v.Goto(3)
	require.Equal(t, 2, v.Page())
	v.Goto(0)
	require.Equal(t, 2, v.Page())
}

func TestView_SetCriteriaResetsPage(t *testing.T) {
	v := listing.NewView(numbered(60), 10)
	v.Goto(4)
	require.Equal(t, 4, v.Page())

	v.SetCriteria(listing.Criteria{ProjectNo: "P-0"})
	require.Equal(t, 1, v.Page())
	require.Equal(t, 60, v.Total())
}

func TestView_NoResults(t *testing.T) {
	v := listing.NewView(numbered(5), 0)
	v.SetCriteria(listing.Criteria{Stage: "Paint"})
	require.Equal(t, 0, v.PageCount())
	require.Empty(t, v.Window())
	v.Goto(1)
	require.Equal(t, 1, v.Page())
}

func TestQuery(t *testing.T) {
	page := listing.Query(numbered(26), listing.Criteria{}, 2, 0)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 2, page.PageCount)
	require.Equal(t, 26, page.Total)
	require.Len(t, page.Items, 1)

	page = listing.Query(numbered(26), listing.Criteria{}, 9, 0)
	require.Equal(t, 1, page.Page)
	require.Len(t, page.Items, 25)
}
