package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillbridge/skillbridge/internal/middleware"
	"github.com/skillbridge/skillbridge/internal/tokens"
)

type Deps struct {
	Auth         *AuthHTTP
	Users        *UserHTTP
	Companies    *CompanyHTTP
	Jobs         *JobPostingHTTP
	Courses      *CourseHTTP
	Certificates *CertificateHTTP
	Recommend    *RecommendHTTP

	Tokens *tokens.Manager

	// SearchEnabled controls whether the course search route is exposed;
	// it requires a configured Elasticsearch client.
	SearchEnabled bool
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	v1.POST("/auth/register", d.Auth.Register)
	v1.POST("/auth/login", d.Auth.Login)

	authMw := middleware.NewBearerAuth(d.Tokens)
	private := v1.Group("", authMw.RequireAuth)

	users := private.Group("/users")
	users.GET("", d.Users.GetUsers)
	users.GET("/:id", d.Users.GetUser)
	users.POST("", d.Users.CreateUser)
	users.PUT("/:id", d.Users.UpdateUser)
	users.DELETE("/:id", d.Users.DeleteUser)
	users.GET("/:id/recommendations", d.Recommend.GetRecommendations)

	companies := private.Group("/companies")
	companies.GET("", d.Companies.GetCompanies)
	companies.GET("/:id", d.Companies.GetCompany)
	companies.POST("", d.Companies.CreateCompany)
	companies.PUT("/:id", d.Companies.UpdateCompany)
	companies.DELETE("/:id", d.Companies.DeleteCompany)

	jobs := private.Group("/jobs")
	jobs.GET("", d.Jobs.GetJobPostings)
	jobs.GET("/:id", d.Jobs.GetJobPosting)
	jobs.POST("", d.Jobs.CreateJobPosting)
	jobs.PUT("/:id", d.Jobs.UpdateJobPosting)
	jobs.DELETE("/:id", d.Jobs.DeleteJobPosting)

	courses := private.Group("/courses")
	if d.SearchEnabled {
		courses.GET("/search", d.Courses.SearchCourses)
	}
	courses.GET("", d.Courses.GetCourses)
	courses.GET("/:id", d.Courses.GetCourse)
	courses.POST("", d.Courses.CreateCourse)
	courses.PUT("/:id", d.Courses.UpdateCourse)
	courses.DELETE("/:id", d.Courses.DeleteCourse)

	certificates := private.Group("/certificates")
	certificates.GET("", d.Certificates.GetCertificates)
	certificates.GET("/:id", d.Certificates.GetCertificate)
	certificates.POST("", d.Certificates.CreateCertificate)
	certificates.PUT("/:id", d.Certificates.UpdateCertificate)
	certificates.DELETE("/:id", d.Certificates.DeleteCertificate)
}
