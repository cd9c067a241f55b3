package scope

import (
	"errors"
	"reflect"
	"testing"

	"github.com/charlykso/smart-s-sub003/app/models"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		assoc   Associations
		want    RoleScope
		wantErr error
	}{
		{
			name: "admin is unrestricted",
			role: models.RoleAdmin,
			want: RoleScope{Role: models.RoleAdmin, Unrestricted: true},
		},
		{
			name:  "ict administrator sees group schools",
			role:  models.RoleICTAdmin,
			assoc: Associations{GroupSchoolIDs: []string{"sch-1", "sch-2"}},
			want:  RoleScope{Role: models.RoleICTAdmin, SchoolIDs: []string{"sch-1", "sch-2"}},
		},
		{
			name:  "proprietor sees group schools",
			role:  models.RoleProprietor,
			assoc: Associations{GroupSchoolIDs: []string{"sch-1"}},
			want:  RoleScope{Role: models.RoleProprietor, SchoolIDs: []string{"sch-1"}},
		},
		{
			name:  "bursar bound to own school",
			role:  models.RoleBursar,
			assoc: Associations{SchoolID: "sch-1"},
			want:  RoleScope{Role: models.RoleBursar, SchoolIDs: []string{"sch-1"}},
		},
		{
			name:  "parent bound to children",
			role:  models.RoleParent,
			assoc: Associations{ChildIDs: []string{"stu-1", "stu-2"}},
			want:  RoleScope{Role: models.RoleParent, StudentIDs: []string{"stu-1", "stu-2"}},
		},
		{
			name:  "student bound to own record",
			role:  models.RoleStudent,
			assoc: Associations{StudentID: "stu-1", SchoolID: "sch-1"},
			want:  RoleScope{Role: models.RoleStudent, StudentIDs: []string{"stu-1"}, SchoolIDs: []string{"sch-1"}},
		},
		{
			name:    "principal without school has no scope",
			role:    models.RolePrincipal,
			wantErr: ErrNoScope,
		},
		{
			name:    "parent without children has no scope",
			role:    models.RoleParent,
			wantErr: ErrNoScope,
		},
		{
			name:    "unknown role denied",
			role:    "janitor",
			wantErr: ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.role, tt.assoc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Derive() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Derive() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParentDeniedForOtherChild(t *testing.T) {
	sc, err := Derive(models.RoleParent, Associations{ChildIDs: []string{"s1", "s2"}})
	if err != nil {
		t.Fatal(err)
	}

	if err := sc.AuthorizeStudent("s1", "sch-1"); err != nil {
		t.Errorf("own child denied: %v", err)
	}
	// S3 is not their child: must be an explicit denial, never an empty
	// result, even if S3 happens to attend the same school.
	if err := sc.AuthorizeStudent("s3", "sch-1"); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("AuthorizeStudent(s3) = %v, want ErrPermissionDenied", err)
	}
}

func TestAuthorizeStudentSchoolRoles(t *testing.T) {
	sc, err := Derive(models.RoleBursar, Associations{SchoolID: "sch-1"})
	if err != nil {
		t.Fatal(err)
	}

	if err := sc.AuthorizeStudent("stu-1", "sch-1"); err != nil {
		t.Errorf("student of own school denied: %v", err)
	}
	if err := sc.AuthorizeStudent("stu-2", "sch-2"); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("student of another school allowed: err = %v", err)
	}
}

func TestAuthorizeSchool(t *testing.T) {
	admin, _ := Derive(models.RoleAdmin, Associations{})
	if err := admin.AuthorizeSchool("any-school"); err != nil {
		t.Errorf("admin denied: %v", err)
	}

	ict, _ := Derive(models.RoleICTAdmin, Associations{GroupSchoolIDs: []string{"sch-1", "sch-2"}})
	if err := ict.AuthorizeSchool("sch-2"); err != nil {
		t.Errorf("group school denied: %v", err)
	}
	if err := ict.AuthorizeSchool("sch-9"); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("outside school allowed: err = %v", err)
	}
}

func TestFilterSchoolIDs(t *testing.T) {
	ict, _ := Derive(models.RoleICTAdmin, Associations{GroupSchoolIDs: []string{"sch-1", "sch-3"}})

	got := ict.FilterSchoolIDs([]string{"sch-1", "sch-2", "sch-3", "sch-4"})
	want := []string{"sch-1", "sch-3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterSchoolIDs = %v, want %v", got, want)
	}

	admin, _ := Derive(models.RoleAdmin, Associations{})
	all := []string{"sch-1", "sch-2"}
	if got := admin.FilterSchoolIDs(all); !reflect.DeepEqual(got, all) {
		t.Errorf("admin filter = %v, want passthrough %v", got, all)
	}
}
