package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageSize is the fixed number of items per listing page.
const PageSize = 10

// Page carries the slice window for one listing page plus the numbers
// the response envelope reports.
type Page struct {
	Number int
	Pages  int
	Offset int
	Limit  int
}

// FromQuery reads the ?page= parameter; anything unparsable counts as
// page 1.
func FromQuery(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate clamps a requested page number against the total item count.
// Out-of-range requests land on the last page rather than erroring,
// and an empty collection still reports one (empty) page.
func Paginate(number int, count int64) Page {
	pages := int((count + PageSize - 1) / PageSize)
	if pages < 1 {
		pages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	return Page{
		Number: number,
		Pages:  pages,
		Offset: (number - 1) * PageSize,
		Limit:  PageSize,
	}
}
