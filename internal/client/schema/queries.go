package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
	"github.com/dmitrijs2005/xpboard/internal/common"
)

const projectClause = `object: { type: { _eq: "project" } }`

// userWhere builds the where-clause fragment selecting one user's rows,
// the matching variable declaration and its value.
func (d dialect) userWhere(id models.Identity) (clause, decl string, vars map[string]any, err error) {
	switch id.Kind {
	case models.IdentityByID:
		if d.userRelation {
			clause = "user: { id: { _eq: $userId } }"
		} else {
			clause = "userId: { _eq: $userId }"
		}
		return clause, "$userId: Int!", map[string]any{"userId": id.ID}, nil
	case models.IdentityByLogin:
		return "user: { login: { _eq: $login } }", "$login: String!", map[string]any{"login": id.Login}, nil
	default:
		return "", "", nil, common.ErrIdentityUnavailable
	}
}

func userQuery(id models.Identity) (string, map[string]any, error) {
	var where, decl string
	var vars map[string]any
	switch id.Kind {
	case models.IdentityByID:
		where, decl, vars = "id: { _eq: $userId }", "$userId: Int!", map[string]any{"userId": id.ID}
	case models.IdentityByLogin:
		where, decl, vars = "login: { _eq: $login }", "$login: String!", map[string]any{"login": id.Login}
	default:
		return "", nil, common.ErrIdentityUnavailable
	}

	doc := fmt.Sprintf(`query(%s) {
  user(where: { %s }) {
    id
    login
    email
    createdAt
  }
}`, decl, where)
	return doc, vars, nil
}

func (d dialect) transactionWhere(f TransactionFilter) (string, string, map[string]any, error) {
	userCl, decl, vars, err := d.userWhere(f.Identity)
	if err != nil {
		return "", "", nil, err
	}
	parts := []string{"type: { _eq: $type }", userCl}
	if f.ProjectOnly {
		parts = append(parts, projectClause)
	}
	vars["type"] = string(f.Type)
	return strings.Join(parts, ", "), decl + ", $type: String!", vars, nil
}

func (d dialect) transactionsQuery(f TransactionFilter) (string, map[string]any, error) {
	where, decl, vars, err := d.transactionWhere(f)
	if err != nil {
		return "", nil, err
	}
	doc := fmt.Sprintf(`query(%s) {
  transaction(
    where: { %s },
    order_by: { createdAt: asc }
  ) {
    amount
    createdAt
    path
    objectId
    object {
      id
      name
      type
    }
  }
}`, decl, where)
	return doc, vars, nil
}

func (d dialect) aggregateQuery(f TransactionFilter) (string, map[string]any, error) {
	where, decl, vars, err := d.transactionWhere(f)
	if err != nil {
		return "", nil, err
	}
	fields := "count"
	if d.summable {
		fields = "sum { amount }\n      count"
	}
	doc := fmt.Sprintf(`query(%s) {
  transaction_aggregate(where: { %s }) {
    aggregate {
      %s
    }
  }
}`, decl, where, fields)
	return doc, vars, nil
}

func (d dialect) gradesQuery(f GradeFilter) (string, map[string]any, error) {
	userCl, decl, vars, err := d.userWhere(f.Identity)
	if err != nil {
		return "", nil, err
	}
	// grade is numeric on the backend, so the bound is inlined rather than
	// passed as a Float variable.
	minGrade := strconv.FormatFloat(f.MinGrade, 'f', -1, 64)
	doc := fmt.Sprintf(`query(%s) {
  %s(
    where: { %s, grade: { _gte: %s } },
    order_by: { createdAt: asc }
  ) {
    grade
    createdAt
    object {
      id
      name
      type
    }
  }
}`, decl, d.gradeEntity, userCl, minGrade)
	return doc, vars, nil
}

const objectQuery = `query($objectId: Int!) {
  object(where: { id: { _eq: $objectId } }) {
    id
    name
    type
  }
}`
