package graphql

import (
	"fmt"

	"github.com/MetaFrench/atlas-web-graphql/internal/domain"
	"github.com/graphql-go/graphql"
)

func taskFromSource(src any) (domain.Task, error) {
	switch t := src.(type) {
	case domain.Task:
		return t, nil
	case *domain.Task:
		if t != nil {
			return *t, nil
		}
	}
	return domain.Task{}, fmt.Errorf("unexpected Task source %T", src)
}

func projectFromSource(src any) (domain.Project, error) {
	switch p := src.(type) {
	case domain.Project:
		return p, nil
	case *domain.Project:
		if p != nil {
			return *p, nil
		}
	}
	return domain.Project{}, fmt.Errorf("unexpected Project source %T", src)
}

func taskScalar(get func(domain.Task) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		t, err := taskFromSource(p.Source)
		if err != nil {
			return nil, err
		}
		return get(t), nil
	}
}

func projectScalar(get func(domain.Project) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		prj, err := projectFromSource(p.Source)
		if err != nil {
			return nil, err
		}
		return get(prj), nil
	}
}
